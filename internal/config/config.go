// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// expense-tracker application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token parameters used when issuing and verifying JWTs.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational database backend.
	// No prefix is applied so the connection string stays the bare
	// DATABASE_URL variable.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle settings for the credential service.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Tokens whose issuer does not match this value are rejected.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "30m", "1h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the persistence backend settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the database target. A "postgres://" (or "postgresql://")
	// URL opens a PostgreSQL connection via the pgx driver; any other value
	// is treated as a SQLite file path. When unset, a local development
	// SQLite database is used.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Zero means no explicit bound beyond what the HTTP stack enforces.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied as the lowest-priority configuration source.
const (
	// DefaultDSN is the local development database used when DATABASE_URL
	// is unset.
	DefaultDSN = "expense_tracker.db"

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultTokenIssuer identifies this service in issued tokens.
	DefaultTokenIssuer = "expense-tracker"

	// DefaultTokenDuration is the bearer token TTL.
	DefaultTokenDuration = 30 * time.Minute
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
