package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// InventoryHandler serves the shopping checklist.
type InventoryHandler struct {
	db *supabase.DatabaseClient
}

func NewInventoryHandler(db *supabase.DatabaseClient) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// List godoc
// @Summary     List checklist items
// @Tags        inventory
// @Produce     json
// @Success     200 {array} models.InventoryItem
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.db.ListInventoryItems()
	if err != nil {
		log.Printf("failed to list inventory items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list inventory items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary     Add a checklist item
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       request body models.InventoryItemInput true "Item"
// @Success     201 {object} models.InventoryItem
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var input models.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.db.AddInventoryItem(input)
	if err != nil {
		log.Printf("failed to add inventory item: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

type checkedInput struct {
	IsChecked *bool `json:"is_checked" binding:"required"`
}

// SetChecked godoc
// @Summary     Check or uncheck a checklist item
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Param       request body checkedInput true "Checked flag"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/inventory/{id}/checked [patch]
func (h *InventoryHandler) SetChecked(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input checkedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.db.SetInventoryItemChecked(id, *input.IsChecked); err != nil {
		respondNotFoundOrError(c, err, "Inventory item not found", "Failed to update inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary     Delete a checklist item
// @Tags        inventory
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteInventoryItem(id); err != nil {
		respondNotFoundOrError(c, err, "Inventory item not found", "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
