package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// SuppliesHandler manages the supplies catalog and the per-order supply
// links behind order cost tracking.
type SuppliesHandler struct {
	db *supabase.DatabaseClient
}

func NewSuppliesHandler(db *supabase.DatabaseClient) *SuppliesHandler {
	return &SuppliesHandler{db: db}
}

// List godoc
// @Summary     List supplies
// @Tags        supplies
// @Produce     json
// @Success     200 {array} models.Supply
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/supplies [get]
func (h *SuppliesHandler) List(c *gin.Context) {
	supplies, err := h.db.ListSupplies()
	if err != nil {
		log.Printf("failed to list supplies: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list supplies"})
		return
	}
	c.JSON(http.StatusOK, supplies)
}

// Create godoc
// @Summary     Create a supply
// @Tags        supplies
// @Accept      json
// @Produce     json
// @Param       request body models.SupplyInput true "Supply"
// @Success     201 {object} models.Supply
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/supplies [post]
func (h *SuppliesHandler) Create(c *gin.Context) {
	var input models.SupplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	supply, err := h.db.CreateSupply(input)
	if err != nil {
		log.Printf("failed to create supply: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create supply"})
		return
	}
	c.JSON(http.StatusCreated, supply)
}

// Update godoc
// @Summary     Update a supply
// @Tags        supplies
// @Accept      json
// @Produce     json
// @Param       id path string true "Supply ID"
// @Param       request body models.SupplyInput true "Supply"
// @Success     200 {object} models.Supply
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/supplies/{id} [put]
func (h *SuppliesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.SupplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	supply, err := h.db.UpdateSupply(id, input)
	if err != nil {
		respondNotFoundOrError(c, err, "Supply not found", "Failed to update supply")
		return
	}
	c.JSON(http.StatusOK, supply)
}

// Delete godoc
// @Summary     Delete a supply
// @Tags        supplies
// @Produce     json
// @Param       id path string true "Supply ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/supplies/{id} [delete]
func (h *SuppliesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteSupply(id); err != nil {
		respondNotFoundOrError(c, err, "Supply not found", "Failed to delete supply")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrderSupplies godoc
// @Summary     List supplies linked to an order
// @Tags        supplies
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {array} models.OrderSupply
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id}/supplies [get]
func (h *SuppliesHandler) ListOrderSupplies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.db.ListOrderSupplies(id)
	if err != nil {
		log.Printf("failed to list order supplies: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list order supplies"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddOrderSupply godoc
// @Summary     Link a supply to an order
// @Tags        supplies
// @Accept      json
// @Produce     json
// @Param       id path string true "Order ID"
// @Param       request body models.OrderSupplyInput true "Supply link"
// @Success     201 {object} models.OrderSupply
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id}/supplies [post]
func (h *SuppliesHandler) AddOrderSupply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.OrderSupplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	supplyID, err := uuid.Parse(input.SupplyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid supply_id"})
		return
	}

	link, err := h.db.AddOrderSupply(id, supplyID, input.Quantity)
	if err != nil {
		log.Printf("failed to add order supply: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add order supply"})
		return
	}
	c.JSON(http.StatusCreated, link)
}

// DeleteOrderSupply godoc
// @Summary     Unlink a supply from an order
// @Tags        supplies
// @Produce     json
// @Param       id path string true "Order supply ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/order-supplies/{id} [delete]
func (h *SuppliesHandler) DeleteOrderSupply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteOrderSupply(id); err != nil {
		respondNotFoundOrError(c, err, "Order supply not found", "Failed to delete order supply")
		return
	}
	c.Status(http.StatusNoContent)
}
