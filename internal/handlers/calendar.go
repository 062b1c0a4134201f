package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// CalendarHandler manages standalone calendar entries (tasks, reminders,
// personal events). Order deadlines come from the orders table.
type CalendarHandler struct {
	db *supabase.DatabaseClient
}

func NewCalendarHandler(db *supabase.DatabaseClient) *CalendarHandler {
	return &CalendarHandler{db: db}
}

// List godoc
// @Summary     List calendar events
// @Tags        calendar
// @Produce     json
// @Param       start query string false "Earliest date (YYYY-MM-DD)"
// @Param       end query string false "Latest date (YYYY-MM-DD)"
// @Success     200 {array} models.CalendarEvent
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/calendar [get]
func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.db.ListCalendarEvents(c.Query("start"), c.Query("end"))
	if err != nil {
		log.Printf("failed to list calendar events: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list calendar events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary     Add a calendar event
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Param       request body models.CalendarEventInput true "Event"
// @Success     201 {object} models.CalendarEvent
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/calendar [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var input models.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	event, err := h.db.AddCalendarEvent(input)
	if err != nil {
		log.Printf("failed to add calendar event: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add calendar event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

type completedInput struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

// SetCompleted godoc
// @Summary     Mark a calendar event completed or not
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Param       request body completedInput true "Completed flag"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/calendar/{id}/completed [patch]
func (h *CalendarHandler) SetCompleted(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input completedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.db.SetCalendarEventCompleted(id, *input.IsCompleted); err != nil {
		respondNotFoundOrError(c, err, "Calendar event not found", "Failed to update calendar event")
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary     Delete a calendar event
// @Tags        calendar
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/calendar/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteCalendarEvent(id); err != nil {
		respondNotFoundOrError(c, err, "Calendar event not found", "Failed to delete calendar event")
		return
	}
	c.Status(http.StatusNoContent)
}
