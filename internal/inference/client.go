// Package inference invokes the remote code-prediction endpoint under a
// latency budget and classifies every attempt into a tagged outcome.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"medcoder/internal/domain"
)

const defaultInvokesPerSecond = 10

// Config describes the remote endpoint.
type Config struct {
	// URL is the full invocations URL; takes precedence over Name/Region.
	URL string
	// Name and Region identify a SageMaker-style endpoint.
	Name   string
	Region string
	// Timeout bounds a single invocation, including rate-limiter waits.
	Timeout time.Duration
	// InvokesPerSecond bounds outbound calls; 0 uses the default.
	InvokesPerSecond int
}

// InvocationsURL resolves the endpoint address: an explicit URL wins,
// otherwise it is derived from the endpoint name and region. Empty means
// the endpoint is not configured.
func (c Config) InvocationsURL() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Name != "" {
		return fmt.Sprintf("https://runtime.sagemaker.%s.amazonaws.com/endpoints/%s/invocations", c.Region, c.Name)
	}
	return ""
}

// Client invokes the remote prediction endpoint. All failure modes resolve
// to an Outcome variant; Invoke never panics and never returns an error.
type Client struct {
	url        string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewClient creates a remote inference client.
func NewClient(cfg Config) *Client {
	rps := cfg.InvokesPerSecond
	if rps <= 0 {
		rps = defaultInvokesPerSecond
	}
	return &Client{
		url:     cfg.InvocationsURL(),
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		// Per-request contexts carry the budget; the http.Client itself
		// stays unbounded so the context is the single cancellation point.
		httpClient: &http.Client{},
	}
}

// Configured reports whether an endpoint address is set.
func (c *Client) Configured() bool {
	return c.url != ""
}

// invokeRequest is the wire request body, matching the endpoint's contract.
type invokeRequest struct {
	Text string `json:"text"`
}

// wirePrediction is one prediction object as returned by the endpoint.
type wirePrediction struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Invoke performs one bounded attempt against the endpoint. No retries:
// retry policy belongs to the caller and must not multiply the budget.
func (c *Client) Invoke(ctx context.Context, text string) Outcome {
	if !c.Configured() {
		return Outcome{Kind: OutcomeNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// The limiter wait spends part of the same budget, never more. Wait
	// fails only when the budget cannot cover the wait, so a saturated
	// limiter surfaces as a timeout.
	if err := c.limiter.Wait(ctx); err != nil {
		return Outcome{Kind: OutcomeTimeout, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	body, err := json.Marshal(invokeRequest{Text: text})
	if err != nil {
		return Outcome{Kind: OutcomeTransportError, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeTransportError, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Outcome{Kind: OutcomeTransportError, Err: fmt.Errorf("endpoint returned %d", resp.StatusCode)}
	}

	var wire []wirePrediction
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Outcome{Kind: OutcomeMalformedResponse, Err: fmt.Errorf("decode response: %w", err)}
	}

	preds, err := validatePredictions(wire)
	if err != nil {
		return Outcome{Kind: OutcomeMalformedResponse, Err: err}
	}

	return Outcome{Kind: OutcomeSuccess, Predictions: preds}
}

// Health probes the endpoint's ping route and reports reachability with the
// observed latency.
func (c *Client) Health(ctx context.Context) (reachable bool, latencyMs int64, err error) {
	if !c.Configured() {
		return false, 0, errors.New("endpoint not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL(c.url), http.NoBody)
	if err != nil {
		return false, 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	latencyMs = time.Since(start).Milliseconds()
	if err != nil {
		return false, latencyMs, fmt.Errorf("endpoint unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, latencyMs, fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}
	return true, latencyMs, nil
}

// classifyErr maps transport-level failures onto outcome kinds: budget
// expiry is a timeout, everything else a transport error.
func (c *Client) classifyErr(err error) Outcome {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Outcome{Kind: OutcomeTimeout, Err: err}
	}
	return Outcome{Kind: OutcomeTransportError, Err: err}
}

// validatePredictions converts and validates the wire predictions. An empty
// list is malformed: the endpoint contract guarantees at least one code.
func validatePredictions(wire []wirePrediction) (domain.PredictionResult, error) {
	if len(wire) == 0 {
		return nil, errors.New("empty prediction list")
	}

	preds := make([]domain.CodePrediction, 0, len(wire))
	for i, w := range wire {
		p := domain.CodePrediction{
			Code:        w.Code,
			Type:        domain.CodeType(w.Type),
			Description: w.Description,
			Confidence:  w.Confidence,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("prediction %d: %w", i, err)
		}
		preds = append(preds, p)
	}

	preds = domain.DedupePredictions(preds)
	domain.SortPredictions(preds)
	return preds, nil
}

// pingURL derives the health route from the invocations URL.
func pingURL(invocations string) string {
	if rest, ok := strings.CutSuffix(invocations, "/invocations"); ok {
		return rest + "/ping"
	}
	return strings.TrimSuffix(invocations, "/") + "/ping"
}
