package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, metricsHandler http.Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Prediction endpoint
	router.POST("/predict", handler.Predict)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/predict", handler.Predict) // POST /api/v1/predict

		metrics := v1.Group("/metrics")
		{
			metrics.GET("/endpoint-health", handler.EndpointHealth) // GET /api/v1/metrics/endpoint-health
		}
	}
}
