package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// HealthCheckController answers liveness probes
type HealthCheckController struct{}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping health check endpoint
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}
