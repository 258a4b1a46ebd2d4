package config

import (
	"fmt"
	"strings"
)

// validBackendSelectors is the closed set of accepted default_backend values.
var validBackendSelectors = map[string]bool{
	"":          true, // auto-select first configured
	"groq":      true,
	"mistral":   true,
	"openai":    true,
	"heuristic": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first problem found.
func Validate(cfg *Config) error {
	if cfg.Server.ListenAddress == "" {
		return fmt.Errorf("server.listen_address must not be empty")
	}
	if !strings.Contains(cfg.Server.ListenAddress, ":") {
		return fmt.Errorf("server.listen_address %q must be in host:port format", cfg.Server.ListenAddress)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}

	if !validBackendSelectors[cfg.DefaultBackend] {
		return fmt.Errorf("default_backend %q is not one of groq, mistral, openai, heuristic", cfg.DefaultBackend)
	}

	for name, b := range map[string]BackendConfig{
		"groq":    cfg.Backends.Groq,
		"mistral": cfg.Backends.Mistral,
		"openai":  cfg.Backends.OpenAI,
	} {
		if b.Model == "" {
			return fmt.Errorf("backends.%s.model must not be empty", name)
		}
		if b.Timeout <= 0 {
			return fmt.Errorf("backends.%s.timeout must be positive", name)
		}
	}

	if cfg.Evaluation.MaxRules <= 0 {
		return fmt.Errorf("evaluation.max_rules must be positive, got %d", cfg.Evaluation.MaxRules)
	}
	if cfg.Evaluation.MaxDocumentChars <= 0 {
		return fmt.Errorf("evaluation.max_document_chars must be positive, got %d", cfg.Evaluation.MaxDocumentChars)
	}
	if cfg.Evaluation.Temperature < 0 || cfg.Evaluation.Temperature > 2 {
		return fmt.Errorf("evaluation.temperature must be in [0, 2], got %v", cfg.Evaluation.Temperature)
	}
	if cfg.Evaluation.MaxConcurrency <= 0 {
		return fmt.Errorf("evaluation.max_concurrency must be positive, got %d", cfg.Evaluation.MaxConcurrency)
	}

	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("telemetry.logging.level %q is not one of debug, info, warn, error", cfg.Telemetry.Logging.Level)
	}
	switch cfg.Telemetry.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("telemetry.logging.format %q is not one of json, text", cfg.Telemetry.Logging.Format)
	}

	return nil
}
