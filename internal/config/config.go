package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the shield
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// seed account credentials.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Analyzer holds configuration for the external threat analysis
	// provider.
	Analyzer Analyzer `envPrefix:"ANALYZER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and the seed account.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DefaultUsername is the username of the account provisioned
	// automatically when the credential store is empty.
	// Env: APP_DEFAULT_USERNAME
	DefaultUsername string `env:"DEFAULT_USERNAME"`

	// DefaultPassword is the plaintext password of the seed account. It is
	// bcrypt-hashed before storage and never persisted in clear form.
	// Env: APP_DEFAULT_PASSWORD
	DefaultPassword string `env:"DEFAULT_PASSWORD"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the backend. A "postgres://" or
	// "postgresql://" URI opens PostgreSQL via pgx; anything else is
	// treated as a SQLite file path (created on first start when absent).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Analyzer holds configuration for the outbound threat analysis provider
// call.
type Analyzer struct {
	// BaseURL is the root URL of the analysis provider HTTP API.
	// Env: ANALYZER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates the server against the provider. Sent as a
	// bearer credential on every analysis call when non-empty.
	// Env: ANALYZER_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single provider round trip (e.g. "15s").
	// Env: ANALYZER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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
