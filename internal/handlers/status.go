package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse/internal/config"
)

// HealthCheck serves GET /health. No auth, safe for load balancer probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
	})
}

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ProductPulse API",
		"version": config.Version,
		"status":  "operational",
	})
}
