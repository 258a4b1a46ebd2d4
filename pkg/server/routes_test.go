package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercator-hq/themis/pkg/backends"
	"mercator-hq/themis/pkg/config"
	"mercator-hq/themis/pkg/server/middleware"
	"mercator-hq/themis/pkg/telemetry/metrics"
	"mercator-hq/themis/pkg/verdict"
)

func newTestRouter(t *testing.T, collector *metrics.Collector) http.Handler {
	t.Helper()
	cfg := config.NewDefaultConfig()
	orchestrator := verdict.NewOrchestrator(
		backends.NewRegistry(nil, backends.KindHeuristic),
		cfg.Evaluation.MaxConcurrency,
		nil,
		nil,
	)
	return NewRouter(cfg, orchestrator, collector, nil)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_MetricsAbsentWithoutCollector(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MetricsServedWithCollector(t *testing.T) {
	cfg := config.NewDefaultConfig()
	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
	router := newTestRouter(t, collector)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_EvaluationsRejectsGet(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/evaluations", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
