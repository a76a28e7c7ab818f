package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-api-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrincipalFromContext(t *testing.T) {
	principal := models.Principal{Subject: "42", Scope: models.ScopeAll}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, principal)

	got, ok := GetPrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetParsedBodyFromContext(t *testing.T) {
	body := map[string]any{"key": "value"}
	ctx := context.WithValue(context.Background(), ParsedBodyCtxKey, any(body))

	got, ok := GetParsedBodyFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, body, got)
}

func TestGetParsedBodyFromContext_Missing(t *testing.T) {
	_, ok := GetParsedBodyFromContext(context.Background())
	assert.False(t, ok)
}
