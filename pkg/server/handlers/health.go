package handlers

import (
	"net/http"

	"mercator-hq/themis/pkg/backends"
)

// Health handles GET /healthz: a liveness probe that also reports which
// backends are configured so operators can verify credentials landed.
type Health struct {
	registry *backends.Registry
}

// NewHealth creates the health handler.
func NewHealth(registry *backends.Registry) *Health {
	return &Health{registry: registry}
}

// ServeHTTP implements http.Handler.
func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	configured := h.registry.Configured()
	names := make([]string, len(configured))
	for i, k := range configured {
		names[i] = string(k)
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Backends: names,
		Default:  string(h.registry.Default()),
	})
}
