// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/logging"
)

// RequestObserver receives one call per served request.
// *metrics.Metrics satisfies it.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Logger logs each request with structured fields and, when obs is not nil,
// reports it to obs.
//
// Log fields:
//   - method, path, route: request line and the matched chi pattern
//   - status, bytes: response status code and body size
//   - duration_ms: time spent in the handler chain
//   - ip, user_agent: client details (ip after TrustedRealIP)
//
// 5xx responses log at error level and 4xx at warn.
func Logger(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			route := routePattern(r)

			if obs != nil {
				obs.ObserveRequest(r.Method, route, ww.status, duration)
			}

			level := slog.LevelInfo
			switch {
			case ww.status >= 500:
				level = slog.LevelError
			case ww.status >= 400:
				level = slog.LevelWarn
			}

			logging.FromContext(r.Context()).Log(r.Context(), level, "request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", ww.status,
				"bytes", ww.bytes,
				"duration_ms", duration.Milliseconds(),
				"ip", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// routePattern returns the chi route pattern that served r, or "" when no
// route matched.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

// responseWriter wraps http.ResponseWriter to capture the status code and
// body size.
type responseWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap provides access to the underlying ResponseWriter for
// http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
