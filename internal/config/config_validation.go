package config

import "time"

// Development fallbacks applied by validate when a field was not supplied by
// any configuration source. The sign key and seed credentials mirror the
// values the dashboard shipped with; production deployments are expected to
// override all three.
const (
	defaultHTTPAddress     = ":3000"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenSignKey    = "sentinel-mind-secret-key-2026"
	defaultTokenIssuer     = "sentinelmind-shield"
	defaultTokenDuration   = time.Hour
	defaultSeedUsername    = "admin"
	defaultSeedPassword    = "admin123"
	defaultDatabaseDSN     = "sentinelmind.db"
	defaultAnalyzerTimeout = 15 * time.Second
)

// validate checks the final merged [StructuredConfig] and fills in defaults
// for every field no source supplied, so the server starts out of the box
// the way the original dashboard did.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = defaultTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.DefaultUsername == "" {
		cfg.App.DefaultUsername = defaultSeedUsername
	}
	if cfg.App.DefaultPassword == "" {
		cfg.App.DefaultPassword = defaultSeedPassword
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDatabaseDSN
	}

	if cfg.Analyzer.Timeout <= 0 {
		cfg.Analyzer.Timeout = defaultAnalyzerTimeout
	}

	return nil
}
