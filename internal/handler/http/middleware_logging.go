package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-gate/internal/logger"
)

// withLogging emits one access-level log line per completed request with
// method, path, status, response size, and latency in milliseconds.
//
// Outside development mode the middleware is a pass-through. The logger's
// own minimum level already filters access lines out of production; this
// gate keeps the guarantee even if the logger is reconfigured.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	if !h.app.IsDevelopment() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.HTTP().
			Str("method", method).
			Str("path", path).
			Int("status", lw.status).
			Int("size", lw.size).
			Int64("duration_ms", duration.Milliseconds()).
			Send()
	})
}
