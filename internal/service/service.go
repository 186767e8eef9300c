// Package service orchestrates prediction requests: normalization, the
// response cache, the remote endpoint attempt, and the local fallback.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"medcoder/internal/cache"
	"medcoder/internal/domain"
	"medcoder/internal/inference"
	"medcoder/internal/logging"
	"medcoder/internal/telemetry"
)

// ErrInvalidInput is returned when the clinical text is empty after
// normalization. Invalid requests never reach the cache or the endpoint.
var ErrInvalidInput = errors.New("clinical text must not be empty")

// RemoteInvoker sends clinical text to the remote inference endpoint.
type RemoteInvoker interface {
	Invoke(ctx context.Context, text string) inference.Outcome
}

// LocalPredictor produces deterministic predictions without any network.
type LocalPredictor interface {
	Predict(text string) domain.PredictionResult
}

// PredictionService resolves clinical text to a ranked prediction result.
// Concurrent requests for the same normalized text share one resolution.
type PredictionService struct {
	remote    RemoteInvoker
	local     LocalPredictor
	cache     *cache.Cache
	logger    logging.Logger
	telemetry *telemetry.Provider
}

// New creates a prediction service. The telemetry provider may be nil.
func New(remote RemoteInvoker, local LocalPredictor, c *cache.Cache, logger logging.Logger, tel *telemetry.Provider) *PredictionService {
	return &PredictionService{
		remote:    remote,
		local:     local,
		cache:     c,
		logger:    logger,
		telemetry: tel,
	}
}

// Predict returns ranked billing-code predictions for the given clinical
// text. The normalized text is the cache key; on a miss the remote endpoint
// is attempted once and any non-success outcome falls back to the local
// predictor, so a miss always resolves to a non-empty result.
func (s *PredictionService) Predict(ctx context.Context, rawText string) (domain.PredictionResult, error) {
	normalized := domain.Normalize(rawText)
	if normalized == "" {
		if s.telemetry != nil {
			s.telemetry.Metrics.InvalidInput.Inc()
		}
		return nil, ErrInvalidInput
	}

	var span trace.Span
	if s.telemetry != nil {
		ctx, span = s.telemetry.StartPredictSpan(ctx)
		defer span.End()
	}

	start := time.Now()
	var source string

	result, status, err := s.cache.GetOrCompute(ctx, normalized, func(ctx context.Context) (domain.PredictionResult, error) {
		preds, src := s.resolve(ctx, normalized)
		source = src
		if len(preds) == 0 {
			return nil, fmt.Errorf("prediction pipeline produced no candidates for %q", normalized)
		}
		return preds, nil
	})
	if err != nil {
		return nil, err
	}

	// Resolved requests keep the source the resolver chose (remote or
	// local); hits and shared resolutions get their own labels.
	switch status {
	case cache.StatusHit:
		source = telemetry.SourceCache
		if s.telemetry != nil {
			s.telemetry.Metrics.CacheHits.Inc()
		}
	case cache.StatusResolved:
		if s.telemetry != nil {
			s.telemetry.Metrics.CacheMisses.Inc()
		}
	case cache.StatusShared:
		source = telemetry.SourceShared
	}

	if s.telemetry != nil {
		s.telemetry.RecordPrediction(source, time.Since(start))
	}
	if span != nil {
		telemetry.SpanSource(span, source)
	}
	s.logger.Debug("prediction served", "source", source, "predictions", len(result))
	return result, nil
}

// resolve attempts the remote endpoint, then falls back to the local
// predictor for every non-success outcome. It returns the predictions and
// the source label that produced them.
func (s *PredictionService) resolve(ctx context.Context, text string) (domain.PredictionResult, string) {
	attemptStart := time.Now()
	outcome := s.remote.Invoke(ctx, text)
	elapsed := time.Since(attemptStart)

	if s.telemetry != nil {
		s.telemetry.RecordRemoteAttempt(outcome.Kind.String(), elapsed)
	}

	if outcome.Kind == inference.OutcomeSuccess {
		return outcome.Predictions, telemetry.SourceRemote
	}

	if outcome.Kind != inference.OutcomeNotConfigured {
		s.logger.Warn("remote endpoint unavailable, using local predictor",
			"outcome", outcome.Kind.String(),
			"error", outcome.Err,
			"latency_ms", elapsed.Milliseconds())
	}
	if s.telemetry != nil {
		s.telemetry.RecordFallback(outcome.Kind.String())
	}
	return s.local.Predict(text), telemetry.SourceLocal
}
