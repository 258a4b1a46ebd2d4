package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records per-request metrics. Implemented by the telemetry
// metrics collector.
type RequestObserver interface {
	ObserveRequest(handler string, code int, duration time.Duration)
}

// Metrics records request duration and status per route. Route paths are
// fixed and few, so the path itself is a safe metric label.
func Metrics(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if observer == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			observer.ObserveRequest(r.URL.Path, sw.status, time.Since(start))
		})
	}
}
