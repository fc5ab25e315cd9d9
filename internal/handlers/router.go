package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"productpulse/internal/config"
	"productpulse/internal/middleware"
	"productpulse/internal/monitoring"
)

// NewRouter wires middleware and routes onto a gin engine. The pool and
// config are injected here once at process start.
func NewRouter(db *sql.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())

	if len(cfg.CORSAllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{"Content-Type", "X-API-Key", "X-Request-ID"},
			MaxAge:       5 * time.Minute,
		}))
	}

	router.GET("/health", HealthCheck)
	router.GET("/api/status", Status)

	authed := router.Group("/", middleware.APIKeyAuth(db))
	authed.GET("/products", ListProducts(db))
	authed.GET("/trends", ListTrends(db))
	authed.GET("/reviews", ListReviews(db))

	service := monitoring.NewService(db, time.Now())
	router.GET("/api/monitoring/status", MonitorStatus(service, cfg.MonitoringKey))
	router.GET("/api/monitoring/snapshot", MonitorSnapshot(service, cfg.MonitoringKey))

	return router
}
