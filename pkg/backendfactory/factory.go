// Package backendfactory constructs the backend registry from configuration.
// It is the only place that knows about every concrete adapter, keeping the
// backends package free of dependencies on its own subpackages.
package backendfactory

import (
	"fmt"
	"log/slog"

	"mercator-hq/themis/pkg/backends"
	"mercator-hq/themis/pkg/backends/groq"
	"mercator-hq/themis/pkg/backends/mistral"
	"mercator-hq/themis/pkg/backends/openai"
	"mercator-hq/themis/pkg/config"
)

// NewRegistry builds the immutable backend registry from configuration.
// Backends without a credential are simply absent from the registry; a
// registry with no backends at all is valid and resolves everything to the
// heuristic.
func NewRegistry(cfg *config.Config) (*backends.Registry, error) {
	entries := make(map[backends.Kind]backends.Backend)

	if cfg.Backends.Groq.Configured() {
		client, err := groq.New(adapterConfig("groq", cfg.Backends.Groq, cfg.Evaluation.Temperature))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize groq backend: %w", err)
		}
		entries[backends.KindGroq] = client
	}

	if cfg.Backends.Mistral.Configured() {
		client, err := mistral.New(adapterConfig("mistral", cfg.Backends.Mistral, cfg.Evaluation.Temperature))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mistral backend: %w", err)
		}
		entries[backends.KindMistral] = client
	}

	if cfg.Backends.OpenAI.Configured() {
		client, err := openai.New(adapterConfig("openai", cfg.Backends.OpenAI, cfg.Evaluation.Temperature))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize openai backend: %w", err)
		}
		entries[backends.KindOpenAI] = client
	}

	preferred, _ := backends.ParseKind(cfg.DefaultBackend)
	registry := backends.NewRegistry(entries, preferred)

	if len(entries) == 0 {
		slog.Warn("no backend credentials configured, all evaluations will use the heuristic")
	} else {
		slog.Info("backend registry initialized",
			"configured", registry.Configured(),
			"default", registry.Default(),
		)
	}

	return registry, nil
}

// adapterConfig maps a config.BackendConfig to the adapter-facing Config.
func adapterConfig(name string, b config.BackendConfig, temperature float64) backends.Config {
	return backends.Config{
		Name:        name,
		Model:       b.Model,
		BaseURL:     b.BaseURL,
		APIKey:      b.APIKey,
		Timeout:     b.Timeout,
		Temperature: temperature,
	}
}
