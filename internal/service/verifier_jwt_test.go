package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-api-gate-test"
)

// signToken builds a compact HS256 JWT for the verifier tests.
func signToken(t *testing.T, signKey, issuer, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	require.NoError(t, err)
	return signed
}

func newTestJWTVerifier() TokenVerifier {
	return NewJWTVerifier(config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
}

// TestJWTVerifier_ValidToken verifies that a correctly signed token yields a
// principal with the token subject and full scope.
func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier := newTestJWTVerifier()
	token := signToken(t, testSignKey, testIssuer, "42", time.Hour)

	principal, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "42", principal.Subject)
	assert.Equal(t, models.ScopeAll, principal.Scope)
}

// TestJWTVerifier_Rejections_TableTest verifies that every validation
// failure collapses to ErrTokenIsExpiredOrInvalid.
func TestJWTVerifier_Rejections_TableTest(t *testing.T) {
	verifier := newTestJWTVerifier()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "expired token",
			token: func(t *testing.T) string { return signToken(t, testSignKey, testIssuer, "42", -time.Hour) },
		},
		{
			name:  "wrong sign key",
			token: func(t *testing.T) string { return signToken(t, "other-key", testIssuer, "42", time.Hour) },
		},
		{
			name:  "wrong issuer",
			token: func(t *testing.T) string { return signToken(t, testSignKey, "someone-else", "42", time.Hour) },
		},
		{
			name:  "not a jwt",
			token: func(t *testing.T) string { return "anything123" },
		},
		{
			name:  "empty token",
			token: func(t *testing.T) string { return "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.token(t))
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// TestNewServices_VerifierSelection verifies that the sign key controls
// which verifier implementation is wired.
func TestNewServices_VerifierSelection(t *testing.T) {
	withKey := NewServices(config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
	_, err := withKey.TokenVerifier.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "configured sign key must select the JWT verifier")

	withoutKey := NewServices(config.Auth{}, logger.Nop())
	principal, err := withoutKey.TokenVerifier.Verify(context.Background(), "garbage")
	require.NoError(t, err, "missing sign key must select the accept-all verifier")
	assert.Equal(t, models.ScopeAll, principal.Scope)
}
