package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"medcoder/internal/domain"
	"medcoder/internal/logging"
	"medcoder/internal/service"
)

type stubPredictor struct {
	result domain.PredictionResult
	err    error
	gotTxt string
}

func (s *stubPredictor) Predict(_ context.Context, text string) (domain.PredictionResult, error) {
	s.gotTxt = text
	return s.result, s.err
}

type stubProber struct {
	configured bool
	reachable  bool
	latencyMs  int64
	err        error
}

func (s *stubProber) Configured() bool { return s.configured }

func (s *stubProber) Health(_ context.Context) (bool, int64, error) {
	return s.reachable, s.latencyMs, s.err
}

func newTestRouter(p Predictor, prober EndpointProber) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(p, prober, logging.NewNop(), "medcoder", "1.0.0")
	SetupRoutes(router, handler, nil)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictReturnsRankedCodes(t *testing.T) {
	predictor := &stubPredictor{
		result: domain.PredictionResult{
			{Code: "I21.4", Type: domain.CodeTypeICD10, Description: "Non-ST elevation myocardial infarction", Confidence: 0.92},
			{Code: "93000", Type: domain.CodeTypeCPT, Description: "Electrocardiogram, complete", Confidence: 0.91},
		},
	}
	router := newTestRouter(predictor, &stubProber{})

	body, _ := json.Marshal(PredictRequest{Text: "Patient presents with chest pain and elevated troponin."})
	w := doRequest(t, router, http.MethodPost, "/predict", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp PredictResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Predictions) != 2 || resp.Predictions[0].Code != "I21.4" {
		t.Errorf("predictions = %+v, want stubbed result", resp.Predictions)
	}
	if predictor.gotTxt == "" {
		t.Error("predictor never received the request text")
	}
}

func TestPredictRejectsMissingText(t *testing.T) {
	router := newTestRouter(&stubPredictor{}, &stubProber{})

	for name, body := range map[string][]byte{
		"empty body":    []byte(``),
		"not json":      []byte(`plain text note`),
		"missing field": []byte(`{"note": "chest pain"}`),
	} {
		w := doRequest(t, router, http.MethodPost, "/predict", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", name, w.Code, http.StatusBadRequest)
		}
	}
}

func TestPredictRejectsBlankText(t *testing.T) {
	predictor := &stubPredictor{err: service.ErrInvalidInput}
	router := newTestRouter(predictor, &stubProber{})

	body, _ := json.Marshal(PredictRequest{Text: "   "})
	w := doRequest(t, router, http.MethodPost, "/predict", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestPredictReportsInternalFailure(t *testing.T) {
	predictor := &stubPredictor{err: errors.New("pipeline exploded")}
	router := newTestRouter(predictor, &stubProber{})

	body, _ := json.Marshal(PredictRequest{Text: "chest pain"})
	w := doRequest(t, router, http.MethodPost, "/predict", body)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("exploded")) {
		t.Error("internal error detail leaked into response body")
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(&stubPredictor{}, &stubProber{})

	for _, path := range []string{"/health", "/ready"} {
		w := doRequest(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

func TestEndpointHealthNotConfigured(t *testing.T) {
	router := newTestRouter(&stubPredictor{}, &stubProber{configured: false})

	w := doRequest(t, router, http.MethodGet, "/api/v1/metrics/endpoint-health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp EndpointHealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Configured || resp.Reachable {
		t.Errorf("response = %+v, want unconfigured and unreachable", resp)
	}
}

func TestEndpointHealthConfigured(t *testing.T) {
	prober := &stubProber{configured: true, reachable: true, latencyMs: 42}
	router := newTestRouter(&stubPredictor{}, prober)

	w := doRequest(t, router, http.MethodGet, "/api/v1/metrics/endpoint-health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp EndpointHealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Configured || !resp.Reachable || resp.LatencyMs != 42 {
		t.Errorf("response = %+v, want configured, reachable, latency 42", resp)
	}
}
