// Package api exposes the prediction service over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medcoder/internal/domain"
	"medcoder/internal/service"
)

// Predictor resolves clinical text to ranked billing-code predictions.
type Predictor interface {
	Predict(ctx context.Context, text string) (domain.PredictionResult, error)
}

// EndpointProber reports remote inference endpoint health.
type EndpointProber interface {
	Configured() bool
	Health(ctx context.Context) (reachable bool, latencyMs int64, err error)
}

// Logger defines the logging interface the handlers depend on.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Handler handles HTTP requests for the prediction API.
type Handler struct {
	predictor Predictor
	endpoint  EndpointProber
	logger    Logger
	service   string
	version   string
}

// NewHandler creates a new API handler.
func NewHandler(predictor Predictor, endpoint EndpointProber, logger Logger, serviceName, version string) *Handler {
	return &Handler{
		predictor: predictor,
		endpoint:  endpoint,
		logger:    logger,
		service:   serviceName,
		version:   version,
	}
}

// Predict handles POST /predict.
func (h *Handler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid prediction request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a text field"})
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidInput.Error()})
			return
		}
		h.logger.Error("Prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{Predictions: result})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
		"version": h.version,
	})
}

// ReadyCheck handles GET /ready. The local predictor needs no dependencies,
// so the service is ready as soon as it is serving.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{
			"local_predictor": "ok",
		},
	})
}

// EndpointHealth handles GET /api/v1/metrics/endpoint-health. It probes the
// remote inference endpoint and reports reachability without affecting the
// prediction path.
func (h *Handler) EndpointHealth(c *gin.Context) {
	resp := EndpointHealthResponse{
		Configured: h.endpoint.Configured(),
		CheckedAt:  time.Now().UTC(),
	}
	if !resp.Configured {
		c.JSON(http.StatusOK, resp)
		return
	}

	reachable, latencyMs, err := h.endpoint.Health(c.Request.Context())
	resp.Reachable = reachable
	resp.LatencyMs = latencyMs
	if err != nil {
		h.logger.Warn("Endpoint health probe failed", "error", err)
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
