// Package migrations applies the embedded goose migrations that define the
// users and threats tables.
//
// SQLite and PostgreSQL need slightly different DDL (autoincrement and
// timestamp defaults), so each dialect keeps its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings db up to the latest schema version for the given goose
// dialect ("sqlite3" or "pgx").
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "sqlite"
	if dialect == "pgx" || dialect == "postgres" {
		dir = "postgres"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
