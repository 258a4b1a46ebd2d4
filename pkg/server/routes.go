package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mercator-hq/themis/pkg/config"
	"mercator-hq/themis/pkg/server/handlers"
	"mercator-hq/themis/pkg/server/middleware"
	"mercator-hq/themis/pkg/telemetry/metrics"
	"mercator-hq/themis/pkg/verdict"
)

// NewRouter assembles the service's routes and middleware chain. collector
// may be nil, in which case no metrics are recorded and /metrics is absent.
func NewRouter(cfg *config.Config, orchestrator *verdict.Orchestrator, collector *metrics.Collector, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.Server.CORS))
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}

	evaluate := handlers.NewEvaluate(
		orchestrator,
		nil, // default PDF extractor
		collectorOrNil(collector),
		cfg.Evaluation,
		cfg.Server.MaxUploadBytes,
		log,
	)

	r.Method(http.MethodPost, "/v1/evaluations", evaluate)
	r.Method(http.MethodGet, "/healthz", handlers.NewHealth(orchestrator.Registry()))
	if collector != nil && cfg.Telemetry.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	return r
}

// collectorOrNil avoids handing the handler a typed nil interface.
func collectorOrNil(c *metrics.Collector) handlers.DocumentObserver {
	if c == nil {
		return nil
	}
	return c
}
