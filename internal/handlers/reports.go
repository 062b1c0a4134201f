package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

type ReportsHandler struct {
	db *supabase.DatabaseClient
}

func NewReportsHandler(db *supabase.DatabaseClient) *ReportsHandler {
	return &ReportsHandler{db: db}
}

// Revenue godoc
// @Summary     Revenue report for a date range
// @Description Totals, per-method breakdown, and outstanding balances. Defaults to the current month.
// @Tags        reports
// @Produce     json
// @Param       start query string false "Start date (YYYY-MM-DD)"
// @Param       end query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} models.RevenueReport
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/reports/revenue [get]
func (h *ReportsHandler) Revenue(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
		end = time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid date: " + d})
			return
		}
	}

	report, err := h.db.RevenueReport(start, end)
	if err != nil {
		log.Printf("failed to build revenue report: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build revenue report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
