package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

type PaymentsHandler struct {
	db *supabase.DatabaseClient
}

func NewPaymentsHandler(db *supabase.DatabaseClient) *PaymentsHandler {
	return &PaymentsHandler{db: db}
}

// List godoc
// @Summary     List payments
// @Tags        payments
// @Produce     json
// @Param       order_id query string false "Filter by order"
// @Success     200 {array} models.Payment
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/payments [get]
func (h *PaymentsHandler) List(c *gin.Context) {
	var (
		payments []models.Payment
		err      error
	)
	if raw := c.Query("order_id"); raw != "" {
		orderID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid order_id"})
			return
		}
		payments, err = h.db.ListPaymentsByOrder(orderID)
	} else {
		payments, err = h.db.ListPayments()
	}
	if err != nil {
		log.Printf("failed to list payments: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Create godoc
// @Summary     Record a payment
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       request body models.PaymentInput true "Payment"
// @Success     201 {object} models.Payment
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/payments [post]
func (h *PaymentsHandler) Create(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid order_id"})
		return
	}

	payment, err := h.db.CreatePayment(orderID, input)
	if err != nil {
		log.Printf("failed to create payment: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// Delete godoc
// @Summary     Delete a payment
// @Tags        payments
// @Produce     json
// @Param       id path string true "Payment ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/payments/{id} [delete]
func (h *PaymentsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeletePayment(id); err != nil {
		respondNotFoundOrError(c, err, "Payment not found", "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
