package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
)

// corsPolicy declares the origins allowed to access the API across domains.
// With no origins configured every origin is allowed, which is the default
// posture of this bootstrap.
type corsPolicy struct {
	allowAll bool
	allowed  map[string]struct{}
}

func newCORSPolicy(cfg config.CORS) corsPolicy {
	policy := corsPolicy{allowed: make(map[string]struct{})}
	for _, origin := range cfg.AllowedOrigins {
		normalized := normalizeOrigin(origin)
		if normalized != "" {
			policy.allowed[normalized] = struct{}{}
		}
	}
	policy.allowAll = len(policy.allowed) == 0
	return policy
}

func (p corsPolicy) allows(origin string) bool {
	if p.allowAll {
		return true
	}
	_, ok := p.allowed[normalizeOrigin(origin)]
	return ok
}

// normalizeOrigin lowercases the scheme and host of an origin value.
// Returns "" for values that are not a scheme://host origin.
func normalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host)
}

// withCORS applies the cross-origin policy. Same-origin requests (no Origin
// header) pass through untouched. Allowed cross-origin requests receive the
// standard response headers; preflight OPTIONS requests are answered
// directly with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.cors.allows(origin) {
			logger.FromRequest(r).Warn().
				Str("origin", origin).
				Str("path", r.URL.Path).
				Msg("blocked CORS origin")
			http.Error(w, "origin not allowed", http.StatusForbidden)
			return
		}

		if h.cors.allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			requestedHeaders := r.Header.Get("Access-Control-Request-Headers")
			if requestedHeaders != "" {
				w.Header().Set("Access-Control-Allow-Headers", requestedHeaders)
			} else {
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
