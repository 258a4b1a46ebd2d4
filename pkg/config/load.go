package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path, applies
// default values and environment variable overrides, and validates the
// result. A missing file is not an error: the service runs fine on defaults
// plus environment credentials.
//
// The loading sequence is:
//  1. Load YAML from file (if present)
//  2. Apply default values
//  3. Apply environment variable overrides (THEMIS_*)
//  4. Validate final configuration
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format THEMIS_SECTION_FIELD
// and always take precedence over file-based configuration. Credentials are
// environment-only.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("THEMIS_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if d, ok := envDuration("THEMIS_SERVER_READ_TIMEOUT"); ok {
		cfg.Server.ReadTimeout = d
	}
	if d, ok := envDuration("THEMIS_SERVER_WRITE_TIMEOUT"); ok {
		cfg.Server.WriteTimeout = d
	}
	if d, ok := envDuration("THEMIS_SERVER_SHUTDOWN_TIMEOUT"); ok {
		cfg.Server.ShutdownTimeout = d
	}
	if val := os.Getenv("THEMIS_SERVER_MAX_UPLOAD_BYTES"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Server.MaxUploadBytes = n
		}
	}

	// Backend overrides
	applyBackendEnvOverrides(&cfg.Backends.Groq, "GROQ")
	applyBackendEnvOverrides(&cfg.Backends.Mistral, "MISTRAL")
	applyBackendEnvOverrides(&cfg.Backends.OpenAI, "OPENAI")
	if val := os.Getenv("THEMIS_DEFAULT_BACKEND"); val != "" {
		cfg.DefaultBackend = val
	}

	// Evaluation overrides
	if val := os.Getenv("THEMIS_EVALUATION_MAX_CONCURRENCY"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Evaluation.MaxConcurrency = n
		}
	}

	// Telemetry overrides
	if val := os.Getenv("THEMIS_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("THEMIS_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
}

// applyBackendEnvOverrides applies environment overrides for a single
// backend. The API key has no file-based counterpart.
func applyBackendEnvOverrides(b *BackendConfig, name string) {
	b.APIKey = os.Getenv("THEMIS_" + name + "_API_KEY")
	if val := os.Getenv("THEMIS_" + name + "_MODEL"); val != "" {
		b.Model = val
	}
	if val := os.Getenv("THEMIS_" + name + "_BASE_URL"); val != "" {
		b.BaseURL = val
	}
	if d, ok := envDuration("THEMIS_" + name + "_TIMEOUT"); ok {
		b.Timeout = d
	}
}

func envDuration(key string) (time.Duration, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false
	}
	return d, true
}
