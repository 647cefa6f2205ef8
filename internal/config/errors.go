package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates no JWT signing secret was provided.
	// The service refuses to start rather than issue unverifiable tokens.
	ErrMissingTokenSignKey = errors.New("missing token sign key")
	// ErrInvalidAuthConfigs indicates invalid token lifecycle settings
	// (for example, a non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN after defaulting).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
