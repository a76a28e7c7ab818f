// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/models"
)

// acceptAllVerifier is the scaffolding implementation of TokenVerifier.
// It accepts every presented token — including malformed ones — and returns
// an empty principal carrying full scope. It performs no verification and is
// not an authentication boundary; production deployments configure a sign
// key so that the JWT verifier replaces it.
type acceptAllVerifier struct {
	logger *logger.Logger
}

// NewAcceptAllVerifier constructs the unconditional verifier.
func NewAcceptAllVerifier(logger *logger.Logger) TokenVerifier {
	return &acceptAllVerifier{logger: logger}
}

// Verify always succeeds. The raw token value is never logged; only its
// length is recorded at debug level for request correlation.
func (v *acceptAllVerifier) Verify(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)
	log.Debug().Int("token_length", len(token)).Msg("bearer token accepted without verification")

	return models.Principal{Scope: models.ScopeAll}, nil
}
