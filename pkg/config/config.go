package config

import "time"

// Config is the root configuration structure for Mercator Themis.
// It contains all configuration sections for the HTTP server, reasoning
// backends, evaluation policy, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and upload limits.
	Server ServerConfig `yaml:"server"`

	// Backends contains configuration for the reasoning backend integrations.
	Backends BackendsConfig `yaml:"backends"`

	// DefaultBackend is the backend used when a request does not specify one.
	// Must be one of "groq", "mistral", "openai", or "heuristic". When empty,
	// the first configured backend (in that order) is used, falling back to
	// the heuristic when no backend has a credential.
	DefaultBackend string `yaml:"default_backend"`

	// Evaluation contains policy knobs for the rule-evaluation engine.
	Evaluation EvaluationConfig `yaml:"evaluation"`

	// Telemetry contains observability configuration (logging and metrics).
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the uploaded document body.
	// Default: 60s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. Evaluation happens inside the handler, so this must cover
	// the slowest expected batch.
	// Default: 120s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxUploadBytes limits the size of an uploaded document.
	// Default: 10485760 (10 MiB)
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration. The
	// evaluation endpoint is consumed by a browser-based review UI, so CORS
	// is enabled by default.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Use ["*"] to allow all origins.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// BackendsConfig contains configuration for all reasoning backends.
// A backend is considered configured when its API key is present; API keys
// are only ever read from the environment (THEMIS_GROQ_API_KEY,
// THEMIS_MISTRAL_API_KEY, THEMIS_OPENAI_API_KEY), never from the file.
type BackendsConfig struct {
	Groq    BackendConfig `yaml:"groq"`
	Mistral BackendConfig `yaml:"mistral"`
	OpenAI  BackendConfig `yaml:"openai"`
}

// BackendConfig contains configuration for a single reasoning backend.
type BackendConfig struct {
	// Model is the model identifier sent to the backend.
	Model string `yaml:"model"`

	// BaseURL overrides the backend's API endpoint base URL. When empty the
	// adapter's hosted default is used.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single backend call. A slow backend call stalls the
	// whole batch otherwise, so this is always enforced.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`

	// APIKey is the credential for the backend. Populated from the
	// environment only and never serialized.
	APIKey string `yaml:"-"`
}

// Configured reports whether the backend has a credential and can be used.
func (b BackendConfig) Configured() bool {
	return b.APIKey != ""
}

// EvaluationConfig contains policy knobs for the rule-evaluation engine.
type EvaluationConfig struct {
	// MaxRules is the maximum number of rules accepted per request.
	// Default: 10
	MaxRules int `yaml:"max_rules"`

	// MaxDocumentChars caps the normalized document text before it is sent
	// to any backend.
	// Default: 12000
	MaxDocumentChars int `yaml:"max_document_chars"`

	// Temperature is the sampling temperature for backend calls. Kept low to
	// bias toward literal extraction over paraphrase.
	// Default: 0.2
	Temperature float64 `yaml:"temperature"`

	// MaxConcurrency caps how many rule evaluations run in parallel within
	// one request. Backend rate limits are the constraint here.
	// Default: 10
	MaxConcurrency int `yaml:"max_concurrency"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json" or "text").
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the /metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus namespace prefix for all metrics.
	// Default: "themis"
	Namespace string `yaml:"namespace"`
}
