package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a zero request timeout or a malformed proxy URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid renewal settings
	// (for example, a zero renewal margin).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidCredentials indicates missing or malformed account
	// credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
