package http

import (
	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/service"
)

type Handler struct {
	services *service.Services

	app      config.App
	cors     corsPolicy
	security securityConfig

	// errorHook receives every handler error after the JSON envelope has
	// been written, unless RespondOnlyErrors is set. It stands in for a
	// process-level supervisor (crash telemetry, outer error logging).
	errorHook func(error)

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, cors config.CORS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		cors:     newCORSPolicy(cors),
		security: defaultSecurityConfig(),
		logger:   logger,
	}
}

// SetErrorHook registers the process-level error observer invoked after an
// error envelope has been written. A nil hook disables forwarding.
func (h *Handler) SetErrorHook(hook func(error)) {
	h.errorHook = hook
}
