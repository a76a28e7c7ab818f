package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/mock"
	"github.com/MKhiriev/go-api-gate/internal/service"
	"github.com/MKhiriev/go-api-gate/internal/utils"
	"github.com/MKhiriev/go-api-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithVerifier(verifier service.TokenVerifier) *Handler {
	return NewHandler(
		&service.Services{TokenVerifier: verifier},
		config.App{},
		config.CORS{},
		logger.Nop(),
	)
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-id middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer anything123",
			wantToken: "anything123",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware tests ----

// TestAuth_MissingHeaderRejectedBeforeVerifier verifies the
// bearer-challenge requirement: a wholly absent credential fails with 401
// and neither the verifier nor the next handler ever runs.
func TestAuth_MissingHeaderRejectedBeforeVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)
	// no EXPECT: any Verify call fails the test

	h := newHandlerWithVerifier(verifier)

	nextCalled := false
	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

// TestAuth_MalformedHeaderRejected verifies that headers without a usable
// token value are rejected with 401.
func TestAuth_MalformedHeaderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)

	h := newHandlerWithVerifier(verifier)

	rr := executeAuth(h, "Bearer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// TestAuth_AcceptedTokenStoresPrincipal verifies that the verifier's
// principal lands in the request context before the next handler runs.
func TestAuth_AcceptedTokenStoresPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)
	principal := models.Principal{Subject: "42", Scope: models.ScopeAll}
	verifier.EXPECT().
		Verify(gomock.Any(), "anything123").
		Return(principal, nil)

	h := newHandlerWithVerifier(verifier)

	var gotPrincipal models.Principal
	var gotOK bool
	rr := executeAuth(h, "Bearer anything123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, gotOK = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, gotOK)
	assert.Equal(t, principal, gotPrincipal)
}

// TestAuth_RejectedTokenProducesEnvelope verifies that a verifier rejection
// yields the JSON envelope with kind AuthError and status 401.
func TestAuth_RejectedTokenProducesEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockTokenVerifier(ctrl)
	verifier.EXPECT().
		Verify(gomock.Any(), "expired-token").
		Return(models.Principal{}, service.ErrTokenIsExpiredOrInvalid)

	h := newHandlerWithVerifier(verifier)

	rr := executeAuth(h, "Bearer expired-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Error", envelope.Response)
	assert.Equal(t, KindAuth, envelope.Error.Type)
	assert.Equal(t, http.StatusUnauthorized, envelope.Error.StatusCode)
	assert.Equal(t, "/", envelope.Error.Path)
}

// TestAuth_AcceptAllVerifierNeverDenies verifies the stub wiring end to
// end: any presented token, even garbage, reaches the next handler.
func TestAuth_AcceptAllVerifierNeverDenies(t *testing.T) {
	h := newHandlerWithVerifier(service.NewAcceptAllVerifier(logger.Nop()))

	for _, token := range []string{"Bearer anything123", "Bearer not.a.jwt", "Basic garbage"} {
		nextCalled := false
		rr := executeAuth(h, token, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, nextCalled)
	}
}
