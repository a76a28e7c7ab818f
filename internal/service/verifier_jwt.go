// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtVerifier validates bearer tokens as HMAC-SHA256 signed JWTs.
//
// Validation covers the signature, the expiration claim, and the issuer
// claim. Any failure is normalised to [ErrTokenIsExpiredOrInvalid] so that
// callers do not need to inspect low-level JWT errors.
type jwtVerifier struct {
	// tokenSignKey is the HMAC secret used to verify token signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens with a different
	// issuer are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewJWTVerifier constructs a TokenVerifier backed by HMAC-SHA256 JWT
// validation with settings from cfg.
//
// The returned verifier is safe for concurrent use; all state is read-only
// after construction.
func NewJWTVerifier(cfg config.Auth, logger *logger.Logger) TokenVerifier {
	return &jwtVerifier{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// Verify validates and parses a raw JWT string.
//
// Returns a principal whose Subject is the token's "sub" claim and whose
// scope is full scope, or ErrTokenIsExpiredOrInvalid on any validation
// failure (expired, wrong issuer, wrong algorithm, malformed).
func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(v.tokenSignKey), nil
	}, jwt.WithIssuer(v.tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		log.Err(err).Msg("error occurred during getting subject from token")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	return models.Principal{Subject: subject, Scope: models.ScopeAll}, nil
}
