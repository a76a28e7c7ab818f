package service

import (
	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
)

type Services struct {
	TokenVerifier TokenVerifier
}

// NewServices wires the service layer. The token verifier is chosen from
// configuration: a non-empty sign key selects JWT verification, otherwise
// the accept-all stub is used (suitable only for development and scaffolding).
func NewServices(cfg config.Auth, logger *logger.Logger) *Services {
	var verifier TokenVerifier
	if cfg.TokenSignKey != "" {
		verifier = NewJWTVerifier(cfg, logger)
	} else {
		logger.Warn().Msg("no token sign key configured, any bearer token will be accepted")
		verifier = NewAcceptAllVerifier(logger)
	}

	return &Services{TokenVerifier: verifier}
}
