package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/services"
)

// NotificationSender is what the notification endpoints need from the
// notification service.
type NotificationSender interface {
	Configured() bool
	Notify(p models.NotificationPayload) services.NotificationResult
}

type NotifyHandler struct {
	notifier NotificationSender
}

func NewNotifyHandler(notifier NotificationSender) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// Send godoc
// @Summary     Send order notification emails
// @Description Emails the baker and, when an address is present, the customer
// @Tags        public
// @Accept      json
// @Produce     json
// @Param       request body models.NotificationPayload true "Notification payload"
// @Success     200 {object} models.NotifyResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /functions/send-order-notification [post]
func (h *NotifyHandler) Send(c *gin.Context) {
	if !h.notifier.Configured() {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Email service not configured"})
		return
	}

	var payload models.NotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if payload.OrderID == "" || payload.CustomerName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields: orderId, customerName"})
		return
	}

	// The response is 200 with success true even when one of the sends
	// failed; the per-recipient flags carry the actual outcome.
	result := h.notifier.Notify(payload)
	c.JSON(http.StatusOK, models.NotifyResponse{
		Success:          true,
		BakerNotified:    result.BakerNotified,
		CustomerNotified: result.CustomerNotified,
	})
}
