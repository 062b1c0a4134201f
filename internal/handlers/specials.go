package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// SpecialsHandler manages seasonal specials. PublicList is unauthenticated
// and limited to active, in-window specials.
type SpecialsHandler struct {
	db *supabase.DatabaseClient
}

func NewSpecialsHandler(db *supabase.DatabaseClient) *SpecialsHandler {
	return &SpecialsHandler{db: db}
}

// PublicList godoc
// @Summary     List active seasonal specials
// @Tags        public
// @Produce     json
// @Success     200 {array} models.SeasonalSpecial
// @Failure     500 {object} models.ErrorResponse
// @Router      /specials [get]
func (h *SpecialsHandler) PublicList(c *gin.Context) {
	specials, err := h.db.ListSeasonalSpecials(true)
	if err != nil {
		log.Printf("failed to list specials: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list specials"})
		return
	}
	c.JSON(http.StatusOK, specials)
}

// List godoc
// @Summary     List all seasonal specials
// @Tags        specials
// @Produce     json
// @Success     200 {array} models.SeasonalSpecial
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/specials [get]
func (h *SpecialsHandler) List(c *gin.Context) {
	specials, err := h.db.ListSeasonalSpecials(false)
	if err != nil {
		log.Printf("failed to list specials: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list specials"})
		return
	}
	c.JSON(http.StatusOK, specials)
}

// Create godoc
// @Summary     Create a seasonal special
// @Tags        specials
// @Accept      json
// @Produce     json
// @Param       request body models.SeasonalSpecialInput true "Special"
// @Success     201 {object} models.SeasonalSpecial
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/specials [post]
func (h *SpecialsHandler) Create(c *gin.Context) {
	var input models.SeasonalSpecialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	special, err := h.db.CreateSeasonalSpecial(input)
	if err != nil {
		log.Printf("failed to create special: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create special"})
		return
	}
	c.JSON(http.StatusCreated, special)
}

// Update godoc
// @Summary     Update a seasonal special
// @Tags        specials
// @Accept      json
// @Produce     json
// @Param       id path string true "Special ID"
// @Param       request body models.SeasonalSpecialInput true "Special"
// @Success     200 {object} models.SeasonalSpecial
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/specials/{id} [put]
func (h *SpecialsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.SeasonalSpecialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	special, err := h.db.UpdateSeasonalSpecial(id, input)
	if err != nil {
		respondNotFoundOrError(c, err, "Special not found", "Failed to update special")
		return
	}
	c.JSON(http.StatusOK, special)
}

// Delete godoc
// @Summary     Delete a seasonal special
// @Tags        specials
// @Produce     json
// @Param       id path string true "Special ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/specials/{id} [delete]
func (h *SpecialsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteSeasonalSpecial(id); err != nil {
		respondNotFoundOrError(c, err, "Special not found", "Failed to delete special")
		return
	}
	c.Status(http.StatusNoContent)
}
