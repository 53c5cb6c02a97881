// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"productsearch/internal/logging"
)

// Logger logs one structured line per request after the handler finishes.
//
// Search and upload endpoints carry path parameters, so alongside the raw
// path the resolved chi route pattern is logged (e.g.
// /api/products/search/brand/{brand}); dashboards aggregate on the pattern
// while the path keeps the concrete value. Server errors log at Error,
// client errors at Warn, everything else at Info. Response size is included
// because upload manifests and large result pages dominate egress.
//
// Log fields:
//   - method, path, route: request identity
//   - status, bytes: response shape
//   - duration_ms: handler time in milliseconds
//   - ip: client IP resolved by the real-ip middleware
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		logger := logging.FromContext(r.Context())
		level := logger.Info
		switch {
		case ww.status >= http.StatusInternalServerError:
			level = logger.Error
		case ww.status >= http.StatusBadRequest:
			level = logger.Warn
		}

		level("request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", ww.status,
			"bytes", ww.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", r.RemoteAddr,
		)
	})
}

// responseWriter captures the status code and body size of a response.
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

// Unwrap exposes the underlying writer so chi's Compress middleware can
// reach the real http.ResponseWriter.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
