package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"productpulse/internal/monitoring"
)

func checkMonitoringKey(c *gin.Context, expected string) bool {
	if expected == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "monitoring API is disabled"})
		return false
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid monitoring key"})
		return false
	}
	return true
}

// MonitorStatus returns a plain-text server status report for operators.
func MonitorStatus(service *monitoring.Service, monitoringKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checkMonitoringKey(c, monitoringKey) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": service.StatusText()})
	}
}

// MonitorSnapshot returns runtime, pool and row-count metrics as JSON.
func MonitorSnapshot(service *monitoring.Service, monitoringKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checkMonitoringKey(c, monitoringKey) {
			return
		}
		c.JSON(http.StatusOK, service.Snapshot())
	}
}
