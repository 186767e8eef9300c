package api

import (
	"time"

	"medcoder/internal/domain"
)

// PredictRequest represents a prediction request.
type PredictRequest struct {
	Text string `json:"text" binding:"required"`
}

// PredictResponse represents a prediction response.
type PredictResponse struct {
	Predictions domain.PredictionResult `json:"predictions"`
}

// EndpointHealthResponse reports remote inference endpoint reachability.
type EndpointHealthResponse struct {
	Configured bool      `json:"configured"`
	Reachable  bool      `json:"reachable"`
	LatencyMs  int64     `json:"latency_ms"`
	CheckedAt  time.Time `json:"checked_at"`
	Error      string    `json:"error,omitempty"`
}
