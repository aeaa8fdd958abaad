package store

import (
	"context"
	"fmt"

	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/logger"
)

// Storages bundles every repository over a single shared database
// connection. The connection and the repositories are read-only after
// construction and safe for concurrent use.
type Storages struct {
	UserRepository   UserRepository
	ThreatRepository ThreatRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN (PostgreSQL for
// postgres:// URIs, the embedded SQLite file otherwise), runs the schema
// migrations, and wires the repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if IsPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ThreatRepository: NewThreatRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
