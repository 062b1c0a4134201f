package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// MenuHandler manages menu items. PublicList is mounted without auth and
// only exposes available items for the marketing site.
type MenuHandler struct {
	db *supabase.DatabaseClient
}

func NewMenuHandler(db *supabase.DatabaseClient) *MenuHandler {
	return &MenuHandler{db: db}
}

// PublicList godoc
// @Summary     List available menu items
// @Tags        public
// @Produce     json
// @Param       category query string false "Filter by category"
// @Success     200 {array} models.MenuItem
// @Failure     500 {object} models.ErrorResponse
// @Router      /menu [get]
func (h *MenuHandler) PublicList(c *gin.Context) {
	items, err := h.db.ListMenuItems(c.Query("category"), true)
	if err != nil {
		log.Printf("failed to list menu items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// List godoc
// @Summary     List menu items including unavailable ones
// @Tags        menu
// @Produce     json
// @Param       category query string false "Filter by category"
// @Success     200 {array} models.MenuItem
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.db.ListMenuItems(c.Query("category"), false)
	if err != nil {
		log.Printf("failed to list menu items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary     Create a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       request body models.MenuItemInput true "Menu item"
// @Success     201 {object} models.MenuItem
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.db.CreateMenuItem(input)
	if err != nil {
		log.Printf("failed to create menu item: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary     Update a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Param       request body models.MenuItemInput true "Menu item"
// @Success     200 {object} models.MenuItem
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/menu/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.db.UpdateMenuItem(id, input)
	if err != nil {
		respondNotFoundOrError(c, err, "Menu item not found", "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

type availabilityInput struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability godoc
// @Summary     Toggle a menu item's availability
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Param       request body availabilityInput true "Availability flag"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/menu/{id}/availability [patch]
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input availabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.db.SetMenuItemAvailability(id, *input.IsAvailable); err != nil {
		respondNotFoundOrError(c, err, "Menu item not found", "Failed to update menu item")
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary     Delete a menu item
// @Tags        menu
// @Produce     json
// @Param       id path string true "Menu item ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/menu/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteMenuItem(id); err != nil {
		respondNotFoundOrError(c, err, "Menu item not found", "Failed to delete menu item")
		return
	}
	c.Status(http.StatusNoContent)
}
