package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/middleware"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// RequestsHandler serves the dashboard's order-request views: the inbox,
// status transitions, and conversion into confirmed orders.
type RequestsHandler struct {
	db        *supabase.DatabaseClient
	storage   *supabase.StorageClient
	publisher *supabase.RealtimeClient
}

func NewRequestsHandler(db *supabase.DatabaseClient, storage *supabase.StorageClient, publisher *supabase.RealtimeClient) *RequestsHandler {
	return &RequestsHandler{db: db, storage: storage, publisher: publisher}
}

// List godoc
// @Summary     List order requests
// @Tags        requests
// @Produce     json
// @Param       status query string false "Filter by status"
// @Success     200 {array} models.OrderRequest
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests [get]
func (h *RequestsHandler) List(c *gin.Context) {
	items, err := h.db.ListOrderRequests(c.Query("status"))
	if err != nil {
		log.Printf("failed to list order requests: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list order requests"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary     Get an order request
// @Tags        requests
// @Produce     json
// @Param       id path string true "Request ID"
// @Success     200 {object} models.OrderRequest
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests/{id} [get]
func (h *RequestsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.db.GetOrderRequest(id)
	if err != nil {
		respondNotFoundOrError(c, err, "Order request not found", "Failed to get order request")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SetStatus godoc
// @Summary     Update an order request's status
// @Tags        requests
// @Accept      json
// @Produce     json
// @Param       id path string true "Request ID"
// @Param       request body models.StatusInput true "New status"
// @Success     200 {object} models.OrderRequest
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests/{id}/status [patch]
func (h *RequestsHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidRequestStatus(input.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status: " + input.Status})
		return
	}

	if err := h.db.SetOrderRequestStatus(id, input.Status); err != nil {
		respondNotFoundOrError(c, err, "Order request not found", "Failed to update order request")
		return
	}

	rec, err := h.db.GetOrderRequest(id)
	if err != nil {
		respondNotFoundOrError(c, err, "Order request not found", "Failed to get order request")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete godoc
// @Summary     Delete an order request
// @Description Removes the request, its image rows, and any stored images
// @Tags        requests
// @Produce     json
// @Param       id path string true "Request ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests/{id} [delete]
func (h *RequestsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	urls, err := h.db.DeleteOrderRequest(id)
	if err != nil {
		respondNotFoundOrError(c, err, "Order request not found", "Failed to delete order request")
		return
	}

	if h.storage != nil {
		if err := h.storage.RemoveByURLs(urls); err != nil {
			// Rows are gone; orphaned objects are recoverable by a bucket sweep.
			log.Printf("failed to remove images for request %s: %v", id, err)
		}
	}
	c.Status(http.StatusNoContent)
}

// ListImages godoc
// @Summary     List a request's inspiration images
// @Tags        requests
// @Produce     json
// @Param       id path string true "Request ID"
// @Success     200 {array} models.RequestImage
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests/{id}/images [get]
func (h *RequestsHandler) ListImages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	images, err := h.db.ListRequestImages(id)
	if err != nil {
		log.Printf("failed to list request images: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// Convert godoc
// @Summary     Convert a request into an order
// @Description Creates a pending order, copies inspiration images, and marks the request confirmed in one transaction
// @Tags        requests
// @Produce     json
// @Param       id path string true "Request ID"
// @Success     200 {object} models.ConvertResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/requests/{id}/convert [post]
func (h *RequestsHandler) Convert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	opID, ok := operatorID(c)
	if !ok {
		return
	}

	orderID, err := h.db.ConvertRequestToOrder(id, opID)
	if err != nil {
		respondNotFoundOrError(c, err, "Order request not found", "Failed to convert order request")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishRequestEvent(id, "request:converted",
			supabase.RequestConvertedPayload(id, orderID)); err != nil {
			log.Printf("failed to publish conversion event: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.ConvertResponse{OrderID: orderID.String()})
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func operatorID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid user ID in token"})
		return uuid.Nil, false
	}
	return id, true
}

func respondNotFoundOrError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMsg})
		return
	}
	log.Printf("%s: %v", failMsg, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: failMsg})
}
