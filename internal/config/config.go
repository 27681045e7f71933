// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fortnite client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - validate:  rules checked by go-playground/validator after merging.
type StructuredConfig struct {
	// Credentials holds the account login and the two OAuth client secrets.
	// They are validated on demand via [Credentials.Validate] because the
	// unauthenticated commands do not need them.
	Credentials Credentials `envPrefix:"CREDENTIALS_" validate:"-"`

	// Adapter holds the outbound HTTP transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds token renewal settings.
	Session Session `envPrefix:"SESSION_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional command-line arguments left after flag
	// parsing (e.g. "stats <account-id> weekly"). Never read from env or JSON.
	Command []string
}

// Credentials are the account secrets needed by the login handshake.
type Credentials struct {
	// Env: CREDENTIALS_EMAIL
	Email string `env:"EMAIL" validate:"required,email"`

	// Env: CREDENTIALS_PASSWORD
	Password string `env:"PASSWORD" validate:"required"`

	// LauncherSecret authenticates the password grant and launcher renewals.
	// Env: CREDENTIALS_LAUNCHER_SECRET
	LauncherSecret string `env:"LAUNCHER_SECRET" validate:"required"`

	// ClientSecret authenticates the exchange-code grant and client renewals.
	// Env: CREDENTIALS_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET" validate:"required"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// RequestTimeout bounds every request; exceeding it is a transport error.
	// Env: ADAPTER_REQUEST_TIMEOUT (default 5s)
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// Proxy is an optional forward proxy URL.
	// Env: ADAPTER_PROXY
	Proxy string `env:"PROXY" validate:"omitempty,url"`

	// VerifyTLS enables certificate verification. It is off unless set,
	// matching the upstream services' historical certificates.
	// Env: ADAPTER_VERIFY_TLS
	VerifyTLS bool `env:"VERIFY_TLS"`

	// BaseURL, when set, sends every service to one host (a local proxy or
	// a fake server). Empty means production hosts.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`
}

// Session holds token renewal settings.
type Session struct {
	// RenewalMargin is how long before expiry a token is renewed.
	// Env: SESSION_RENEWAL_MARGIN (default 15s)
	RenewalMargin time.Duration `env:"RENEWAL_MARGIN" validate:"gt=0"`

	// RenewalAttempts is the number of refresh requests tried before the
	// session is given up.
	// Env: SESSION_RENEWAL_ATTEMPTS (default 3)
	RenewalAttempts uint `env:"RENEWAL_ATTEMPTS" validate:"gte=1"`

	// RenewalRetryDelay is the pause between failed refresh requests.
	// Env: SESSION_RENEWAL_RETRY_DELAY (default 2s)
	RenewalRetryDelay time.Duration `env:"RENEWAL_RETRY_DELAY" validate:"gt=0"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL (default "info")
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// defaultConfig returns the values used for fields no source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: 5 * time.Second,
		},
		Session: Session{
			RenewalMargin:     15 * time.Second,
			RenewalAttempts:   3,
			RenewalRetryDelay: 2 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
