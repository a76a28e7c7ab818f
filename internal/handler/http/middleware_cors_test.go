package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/service"
	"github.com/stretchr/testify/assert"
)

func newCORSTestHandler(origins ...string) *Handler {
	return NewHandler(
		&service.Services{TokenVerifier: service.NewAcceptAllVerifier(logger.Nop())},
		config.App{},
		config.CORS{AllowedOrigins: origins},
		logger.Nop(),
	)
}

func executeCORS(h *Handler, method, origin string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.withCORS(next)
	req := httptest.NewRequest(method, "/", nil)
	req = injectNopLogger(req)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNormalizeOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "plain origin", origin: "http://example.com", want: "http://example.com"},
		{name: "mixed case", origin: "HTTP://Example.COM", want: "http://example.com"},
		{name: "with port", origin: "https://example.com:8443", want: "https://example.com:8443"},
		{name: "surrounding whitespace", origin: "  http://example.com  ", want: "http://example.com"},
		{name: "empty", origin: "", want: ""},
		{name: "no scheme", origin: "example.com", want: ""},
		{name: "bare path", origin: "/some/path", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeOrigin(tt.origin))
		})
	}
}

// TestWithCORS_SameOriginPassesThrough verifies that requests without an
// Origin header are untouched by the policy.
func TestWithCORS_SameOriginPassesThrough(t *testing.T) {
	h := newCORSTestHandler("http://allowed.example")

	rr := executeCORS(h, http.MethodPost, "", okHandler())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

// TestWithCORS_AllowAllByDefault verifies the default posture: with no
// configured origins every caller is allowed with a wildcard header.
func TestWithCORS_AllowAllByDefault(t *testing.T) {
	h := newCORSTestHandler()

	rr := executeCORS(h, http.MethodPost, "http://anything.example", okHandler())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

// TestWithCORS_AllowedOriginEchoed verifies that a configured origin is
// echoed back with a Vary header instead of the wildcard.
func TestWithCORS_AllowedOriginEchoed(t *testing.T) {
	h := newCORSTestHandler("http://allowed.example")

	rr := executeCORS(h, http.MethodPost, "http://allowed.example", okHandler())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://allowed.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

// TestWithCORS_OriginMatchIsCaseInsensitive verifies that origin matching
// follows the normalized form.
func TestWithCORS_OriginMatchIsCaseInsensitive(t *testing.T) {
	h := newCORSTestHandler("http://Allowed.Example")

	rr := executeCORS(h, http.MethodPost, "HTTP://ALLOWED.EXAMPLE", okHandler())

	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestWithCORS_BlockedOrigin verifies that a non-configured origin is
// rejected with 403 before reaching the handler.
func TestWithCORS_BlockedOrigin(t *testing.T) {
	h := newCORSTestHandler("http://allowed.example")

	rr := executeCORS(h, http.MethodPost, "http://evil.example",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for a blocked origin")
		}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

// TestWithCORS_Preflight verifies that an OPTIONS preflight is answered
// directly with 204 and the method/header grants.
func TestWithCORS_Preflight(t *testing.T) {
	h := newCORSTestHandler()

	rr := executeCORS(h, http.MethodOptions, "http://anything.example",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("preflight must not reach the handler")
		}))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
}

// TestWithCORS_PreflightEchoesRequestedHeaders verifies that explicitly
// requested headers are granted back verbatim.
func TestWithCORS_PreflightEchoesRequestedHeaders(t *testing.T) {
	h := newCORSTestHandler()

	middleware := h.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req = injectNopLogger(req)
	req.Header.Set("Origin", "http://anything.example")
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "X-Custom-Header", rr.Header().Get("Access-Control-Allow-Headers"))
}
