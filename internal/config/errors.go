package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, a negative bcrypt cost or token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
