// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvDevelopment is the environment-mode value that enables verbose logging
// and per-request access lines. It is also the default when APP_ENV is unset.
// Any other value is treated as production-like.
const EnvDevelopment = "development"

// StructuredConfig is the top-level configuration container for the
// go-api-gate application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the environment mode and
	// the error propagation policy.
	App App `envPrefix:"APP_"`

	// Auth holds token verification settings. When the sign key is empty
	// the accept-all stub verifier is used instead of JWT verification.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Logs holds placement of the file log sinks.
	Logs Logs `envPrefix:"LOG_"`

	// CORS holds the cross-origin policy. An empty origin list allows all
	// origins.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the environment-mode indicator. "development" (or empty)
	// enables debug and access logging; any other value suppresses both.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// RespondOnlyErrors disables forwarding of handler errors to the
	// process-level error hook after the JSON envelope has been written.
	// The default (false) preserves the respond-and-forward behaviour.
	// Env: APP_RESPOND_ONLY_ERRORS
	RespondOnlyErrors bool `env:"RESPOND_ONLY_ERRORS"`
}

// IsDevelopment reports whether the application runs in development mode.
// An unset environment indicator counts as development.
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == EnvDevelopment
}

// Auth holds token verification settings.
type Auth struct {
	// TokenSignKey is the secret key used to verify JWT token signatures.
	// When empty, bearer tokens are accepted without verification.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of verified tokens. Required
	// whenever TokenSignKey is set.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading and writing
	// a single inbound request (e.g. "30s", "1m"). Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Logs holds placement of the file log sinks.
type Logs struct {
	// Dir is the directory that holds both log files.
	// Env: LOG_DIR
	Dir string `env:"DIR"`

	// ErrorFile is the name of the error-only log file inside Dir.
	// Env: LOG_ERROR_FILE
	ErrorFile string `env:"ERROR_FILE"`

	// CombinedFile is the name of the all-levels log file inside Dir.
	// Env: LOG_COMBINED_FILE
	CombinedFile string `env:"COMBINED_FILE"`
}

// CORS holds the cross-origin request policy.
type CORS struct {
	// AllowedOrigins lists origins permitted to make cross-origin requests.
	// An empty list allows every origin.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
