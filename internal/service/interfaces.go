package service

import (
	"context"

	"github.com/MKhiriev/go-api-gate/models"
)

// TokenVerifier is the pluggable verification strategy behind the bearer
// authentication middleware. The route wiring depends only on this interface,
// so deployments can swap the verification policy without touching handlers.
//
// Verify receives the raw bearer token extracted from the Authorization
// header and returns the authenticated principal, or an error when the token
// is rejected.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (models.Principal, error)
}
