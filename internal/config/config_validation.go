// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The learn-app Authors

package config

// DevTokenSignKey is the fallback JWT signing secret used when no key is
// configured. It exists so the service can start in a development
// environment with zero configuration; any production deployment must set
// AUTH_TOKEN_SIGN_KEY or the equivalent flag/JSON field.
const DevTokenSignKey = "your_jwt_secret_key"

// DefaultHTTPAddress is the listen address used when none is configured.
const DefaultHTTPAddress = ":8002"

// applyDefaults fills in development-friendly defaults for fields the merged
// configuration left empty. It runs before validate so that the validated
// config is the one the application actually uses.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = DevTokenSignKey
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.BcryptCost < 0 || cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

// IsDevSigningSecret reports whether the configuration ended up on the
// development fallback signing secret. Callers use it to emit a startup
// warning; the fallback itself is intentional, not hidden.
func (cfg *StructuredConfig) IsDevSigningSecret() bool {
	return cfg.Auth.TokenSignKey == DevTokenSignKey
}
