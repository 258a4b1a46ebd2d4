package config

import "time"

// Default configuration values.
const (
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 60 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxUploadBytes  = 10 << 20

	DefaultBackendTimeout = 30 * time.Second

	DefaultMaxRules         = 10
	DefaultMaxDocumentChars = 12000
	DefaultTemperature      = 0.2
	DefaultMaxConcurrency   = 10
)

// Default model identifiers per backend. These track the cheapest hosted
// model suitable for literal extraction; override in the config file to pin
// a specific version.
const (
	DefaultGroqModel    = "llama-3.1-8b-instant"
	DefaultMistralModel = "mistral-small-latest"
	DefaultOpenAIModel  = "gpt-4o-mini"
)

// NewDefaultConfig returns a Config populated with all default values.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any zero-valued configuration
// fields. Called after YAML parsing so partial files are valid.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.Server.CORS.AllowedOrigins == nil {
		cfg.Server.CORS.Enabled = true
		cfg.Server.CORS.AllowedOrigins = []string{"*"}
	}

	// Backend defaults
	applyBackendDefaults(&cfg.Backends.Groq, DefaultGroqModel)
	applyBackendDefaults(&cfg.Backends.Mistral, DefaultMistralModel)
	applyBackendDefaults(&cfg.Backends.OpenAI, DefaultOpenAIModel)

	// Evaluation defaults
	if cfg.Evaluation.MaxRules == 0 {
		cfg.Evaluation.MaxRules = DefaultMaxRules
	}
	if cfg.Evaluation.MaxDocumentChars == 0 {
		cfg.Evaluation.MaxDocumentChars = DefaultMaxDocumentChars
	}
	if cfg.Evaluation.Temperature == 0 {
		cfg.Evaluation.Temperature = DefaultTemperature
	}
	if cfg.Evaluation.MaxConcurrency == 0 {
		cfg.Evaluation.MaxConcurrency = DefaultMaxConcurrency
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "json"
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Enabled = true
		cfg.Telemetry.Metrics.Namespace = "themis"
	}
}

func applyBackendDefaults(b *BackendConfig, model string) {
	if b.Model == "" {
		b.Model = model
	}
	if b.Timeout == 0 {
		b.Timeout = DefaultBackendTimeout
	}
}
