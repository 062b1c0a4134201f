package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/mailer"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

// TextMailSender sends a single plain-text message, as the legacy SMTP
// relay did.
type TextMailSender interface {
	Configured() bool
	Send(to, subject, body string) error
}

// LegacyNotifyHandler reimplements the original standalone SMTP
// notification endpoint, preserved for older marketing-site deployments
// that still call it.
type LegacyNotifyHandler struct {
	sender    TextMailSender
	alertTo   string
	defaultTo string
}

func NewLegacyNotifyHandler(sender TextMailSender, alertTo, defaultTo string) *LegacyNotifyHandler {
	return &LegacyNotifyHandler{sender: sender, alertTo: alertTo, defaultTo: defaultTo}
}

// Handle answers OPTIONS preflights itself and rejects everything but
// POST, matching the original endpoint's contract.
func (h *LegacyNotifyHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	case http.MethodPost:
		h.send(c)
	default:
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	}
}

func (h *LegacyNotifyHandler) send(c *gin.Context) {
	var payload models.NotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if payload.OrderID == "" || payload.CustomerName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields: orderId, customerName"})
		return
	}

	recipient := h.alertTo
	if recipient == "" {
		recipient = h.defaultTo
	}
	if recipient == "" || !h.sender.Configured() {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Email service not configured"})
		return
	}

	subject := "Order update: " + payload.CustomerName
	if payload.NotificationType == "order_confirmed" {
		subject = "Order confirmed: " + payload.CustomerName
	}

	if err := h.sender.Send(recipient, subject, mailer.OrderSummaryText(payload)); err != nil {
		log.Printf("legacy notification failed for order %s: %v", payload.OrderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, models.LegacyNotifyResponse{OK: true})
}
