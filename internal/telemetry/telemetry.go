// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the prediction service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "medcoder"

// Result sources for the predictions counter. SourceShared marks requests
// that awaited another request's in-flight resolution.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
	SourceCache  = "cache"
	SourceShared = "shared"
)

// Metrics holds all prediction Prometheus metrics.
type Metrics struct {
	PredictionsTotal   *prometheus.CounterVec
	PredictionDuration prometheus.Histogram
	RemoteOutcomes     *prometheus.CounterVec
	RemoteLatency      prometheus.Histogram
	FallbackTotal      *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	InvalidInput       prometheus.Counter
}

// Provider wraps the tracer and metrics.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartPredictSpan opens a span for one prediction request.
func (p *Provider) StartPredictSpan(ctx context.Context) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, "predict")
}

// RecordPrediction records a completed prediction with its result source.
func (p *Provider) RecordPrediction(source string, duration time.Duration) {
	p.Metrics.PredictionsTotal.WithLabelValues(source).Inc()
	p.Metrics.PredictionDuration.Observe(duration.Seconds())
}

// RecordRemoteAttempt records one remote invocation outcome.
func (p *Provider) RecordRemoteAttempt(outcome string, duration time.Duration) {
	p.Metrics.RemoteOutcomes.WithLabelValues(outcome).Inc()
	p.Metrics.RemoteLatency.Observe(duration.Seconds())
}

// RecordFallback records that a request was answered by the local predictor
// and why.
func (p *Provider) RecordFallback(reason string) {
	p.Metrics.FallbackTotal.WithLabelValues(reason).Inc()
}

// SpanSource annotates a span with the source that produced the result.
func SpanSource(span trace.Span, source string) {
	span.SetAttributes(attribute.String("prediction.source", source))
}

func initMetrics() *Metrics {
	return &Metrics{
		PredictionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medcoder_predictions_total",
			Help: "Total predictions served, by result source (remote, local, cache, shared)",
		}, []string{"source"}),
		PredictionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "medcoder_prediction_duration_seconds",
			Help:    "End-to-end time to serve a prediction",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),
		RemoteOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medcoder_remote_outcomes_total",
			Help: "Remote endpoint attempts by outcome kind",
		}, []string{"outcome"}),
		RemoteLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "medcoder_remote_latency_seconds",
			Help:    "Latency of remote endpoint invocations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		FallbackTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medcoder_fallback_total",
			Help: "Requests answered by the local predictor, by reason",
		}, []string{"reason"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medcoder_cache_hits_total",
			Help: "Prediction cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medcoder_cache_misses_total",
			Help: "Prediction cache misses",
		}),
		InvalidInput: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medcoder_invalid_input_total",
			Help: "Requests rejected for empty or whitespace-only text",
		}),
	}
}
