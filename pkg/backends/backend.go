package backends

import (
	"context"
	"time"
)

// Kind identifies one of the closed set of reasoning backends. Backend
// selection is modeled as an explicit enum rather than runtime string
// dispatch against SDK objects.
type Kind string

const (
	// KindGroq is the Groq hosted inference backend.
	KindGroq Kind = "groq"

	// KindMistral is the Mistral AI backend.
	KindMistral Kind = "mistral"

	// KindOpenAI is the OpenAI backend.
	KindOpenAI Kind = "openai"

	// KindHeuristic is the deterministic keyword-overlap fallback. It is not
	// a Backend implementation; the orchestrator handles it directly.
	KindHeuristic Kind = "heuristic"
)

// kindOrder is the fixed priority order used when auto-selecting a default
// backend.
var kindOrder = []Kind{KindGroq, KindMistral, KindOpenAI}

// ParseKind parses a backend selector string. It returns false for anything
// outside the closed set; callers treat unknown selectors as "use the
// default", never as an error.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindGroq, KindMistral, KindOpenAI, KindHeuristic:
		return Kind(s), true
	default:
		return "", false
	}
}

// Backend is the contract every reasoning backend adapter implements.
// An adapter sends one prompt to its backend and returns the backend's raw
// textual payload, already unwrapped from the backend-specific response
// envelope. Adapters never retry: a failed call is signaled upward
// immediately so the orchestrator can degrade to the heuristic.
type Backend interface {
	// Invoke sends the prompt to the backend and returns the raw text of the
	// model's reply. Returns a typed error (AuthError, TimeoutError,
	// BackendError, ParseError, EmptyResponseError) on failure.
	Invoke(ctx context.Context, prompt string) (string, error)

	// Name returns the backend's identifier (e.g., "groq").
	Name() string

	// Model returns the resolved model identifier used for requests.
	Model() string

	// Close releases the adapter's resources (idle HTTP connections).
	Close() error
}

// Config contains configuration for a single backend adapter. This is the
// subset of config.BackendConfig the adapters need, plus the shared sampling
// temperature.
type Config struct {
	// Name is the backend identifier (e.g., "groq").
	Name string

	// Model is the model identifier sent with each request.
	Model string

	// BaseURL is the API endpoint base URL. Adapters fill in their hosted
	// default when empty.
	BaseURL string

	// APIKey is the authentication credential.
	APIKey string

	// Timeout bounds a single backend call.
	Timeout time.Duration

	// Temperature is the sampling temperature. Kept low (0.2) to bias toward
	// deterministic, literal extraction.
	Temperature float64
}
