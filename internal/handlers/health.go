package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

// Health godoc
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: "mahoney-makes-backend",
	})
}
