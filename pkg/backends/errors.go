package backends

import (
	"fmt"
	"time"
)

// BackendError represents a general backend failure.
// It includes the backend name, HTTP status code, and underlying error.
type BackendError struct {
	// Backend is the name of the backend that returned the error
	Backend string

	// StatusCode is the HTTP status code (0 if not applicable)
	StatusCode int

	// Message is the error message
	Message string

	// Cause is the underlying error (if any)
	Cause error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend %q error (status %d): %s", e.Backend, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %q error: %s", e.Backend, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *BackendError) Unwrap() error {
	return e.Cause
}

// AuthError represents an authentication failure.
// This occurs when the backend rejects the API key (HTTP 401 or 403).
type AuthError struct {
	// Backend is the name of the backend that rejected authentication
	Backend string

	// Message is the error message from the backend
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("backend %q authentication failed: %s", e.Backend, e.Message)
}

// TimeoutError represents a request timeout.
// This occurs when a call exceeds the configured per-backend timeout.
type TimeoutError struct {
	// Backend is the name of the backend where the timeout occurred
	Backend string

	// Timeout is the configured timeout duration
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("backend %q request timeout after %s", e.Backend, e.Timeout)
}

// ParseError represents a response-envelope parsing failure.
// This occurs when the backend returns a body that does not match its
// documented envelope shape. Note this is about the transport envelope, not
// the model's JSON payload; payload repair belongs to the verdict normalizer.
type ParseError struct {
	// Backend is the name of the backend that returned the malformed response
	Backend string

	// Cause is the underlying parse error
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("backend %q response parse error: %v", e.Backend, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the backend answered successfully but its
// envelope carried no textual payload.
type EmptyResponseError struct {
	// Backend is the name of the backend that returned the empty response
	Backend string
}

// Error implements the error interface.
func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("backend %q returned an empty payload", e.Backend)
}

// ConfigError represents a backend configuration error.
type ConfigError struct {
	// Backend is the name of the backend with invalid configuration
	Backend string

	// Field is the configuration field that is invalid
	Field string

	// Message describes the configuration error
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("backend %q configuration error for field %q: %s",
		e.Backend, e.Field, e.Message)
}
