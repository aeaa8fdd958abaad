package store

import (
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/migrations"
)

// Driver names as registered with database/sql. The driver also selects the
// goose dialect, the squirrel placeholder format, and the unique-violation
// mapping.
const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB bundles the raw connection with backend-specific behaviour so that the
// repositories stay driver-agnostic.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate brings the connected database up to the latest schema version
// using the goose dialect matching the driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err represents a unique-constraint
// violation in the connected backend's native error vocabulary.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.driver {
	case driverPostgres:
		return postgresError(err) == pgerrcode.UniqueViolation
	case driverSQLite:
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) {
			return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
		}
	}

	return false
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server. Anything
// else is treated as a SQLite file path.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
