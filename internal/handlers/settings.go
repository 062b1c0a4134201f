package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// SettingsHandler exposes the key-value business settings, including the
// notification recipient override read by the mail pipeline.
type SettingsHandler struct {
	db *supabase.DatabaseClient
}

func NewSettingsHandler(db *supabase.DatabaseClient) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// List godoc
// @Summary     List business settings
// @Tags        settings
// @Produce     json
// @Success     200 {array} models.BusinessSetting
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.db.ListSettings()
	if err != nil {
		log.Printf("failed to list settings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Get godoc
// @Summary     Get a setting by key
// @Tags        settings
// @Produce     json
// @Param       key path string true "Setting key"
// @Success     200 {object} models.BusinessSetting
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/settings/{key} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	value, err := h.db.GetSetting(key)
	if err != nil {
		log.Printf("failed to get setting %q: %v", key, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get setting"})
		return
	}
	if value == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Setting not found"})
		return
	}
	c.JSON(http.StatusOK, models.BusinessSetting{SettingKey: key, SettingValue: value})
}

// Set godoc
// @Summary     Create or update a setting
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       key path string true "Setting key"
// @Param       request body models.SettingInput true "Value"
// @Success     200 {object} models.BusinessSetting
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/settings/{key} [put]
func (h *SettingsHandler) Set(c *gin.Context) {
	var input models.SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	setting, err := h.db.SetSetting(c.Param("key"), input.SettingValue)
	if err != nil {
		log.Printf("failed to set setting: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to set setting"})
		return
	}
	c.JSON(http.StatusOK, setting)
}
