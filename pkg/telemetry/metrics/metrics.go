// Package metrics provides Prometheus metrics for Mercator Themis.
//
// Metrics:
//   - themis_evaluations_total: verdict count by source and status
//   - themis_backend_failures_total: degradations to the heuristic by backend and reason
//   - themis_request_duration_seconds: HTTP request duration histogram by handler and code
//   - themis_document_chars: normalized document length histogram
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mercator-hq/themis/pkg/config"
	"mercator-hq/themis/pkg/verdict"
)

// Collector owns the service's Prometheus metrics and their registry.
// It implements verdict.Observer so the orchestrator can record outcomes
// without depending on Prometheus.
type Collector struct {
	registry *prometheus.Registry

	evaluationsTotal     *prometheus.CounterVec
	backendFailuresTotal *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	documentChars        prometheus.Histogram
}

var _ verdict.Observer = (*Collector)(nil)

// NewCollector creates and registers all service metrics. When registry is
// nil a fresh one is created (useful in tests to avoid duplicate
// registration).
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "evaluations_total",
				Help:      "Total number of rule verdicts produced, by evaluator source and status",
			},
			[]string{"source", "status"},
		),

		backendFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "backend_failures_total",
				Help:      "Total number of backend calls that degraded to the heuristic",
			},
			[]string{"backend", "reason"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler", "code"},
		),

		documentChars: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "document_chars",
				Help:      "Length of normalized document text in characters",
				Buckets:   prometheus.ExponentialBuckets(256, 2, 8), // 256 chars to 32K
			},
		),
	}

	registry.MustRegister(
		c.evaluationsTotal,
		c.backendFailuresTotal,
		c.requestDuration,
		c.documentChars,
	)

	return c
}

// EvaluationCompleted implements verdict.Observer.
func (c *Collector) EvaluationCompleted(source string, status verdict.Status) {
	c.evaluationsTotal.WithLabelValues(source, string(status)).Inc()
}

// BackendFailed implements verdict.Observer.
func (c *Collector) BackendFailed(backend, reason string) {
	c.backendFailuresTotal.WithLabelValues(backend, reason).Inc()
}

// ObserveRequest records one HTTP request's duration.
func (c *Collector) ObserveRequest(handler string, code int, duration time.Duration) {
	c.requestDuration.WithLabelValues(handler, strconv.Itoa(code)).Observe(duration.Seconds())
}

// ObserveDocument records the normalized length of an extracted document.
func (c *Collector) ObserveDocument(chars int) {
	c.documentChars.Observe(float64(chars))
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
