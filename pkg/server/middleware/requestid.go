package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys defined in this package.
type contextKey int

const (
	// requestIDKey is the context key for the request ID.
	requestIDKey contextKey = iota
)

const (
	// RequestIDHeader is the HTTP header for request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID generates a unique request ID for each request and adds it to
// the context and response headers. If the client provides a request ID in
// the X-Request-ID header, it is used instead of generating a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
