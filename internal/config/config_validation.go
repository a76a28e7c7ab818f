// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// applyDefaults fills fields that no configuration source supplied.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if cfg.Logs.Dir == "" {
		cfg.Logs.Dir = "logs"
	}
	if cfg.Logs.ErrorFile == "" {
		cfg.Logs.ErrorFile = "error.log"
	}
	if cfg.Logs.CombinedFile == "" {
		cfg.Logs.CombinedFile = "combined.log"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey != "" && cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
