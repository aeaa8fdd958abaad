// Package store implements the persistence layer of the shield server: the
// credential store and the append-only threat record store, backed by an
// embedded SQLite database or PostgreSQL depending on the configured DSN.
package store

import (
	"context"

	"github.com/sentinelmind/shield/models"
)

// UserRepository is the credential store. User records are created once
// (seeding) and never updated or deleted by any exposed operation.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned UserID. Fails with [ErrUsernameAlreadyExists] when
	// the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername performs an exact, case-sensitive lookup.
	// Fails with [ErrNoUserWasFound] when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ThreatRepository is the append-only audit log of analyzed items. Records
// are immutable once inserted; no update or delete is exposed.
type ThreatRepository interface {
	// Insert appends a record with a server-assigned ID and timestamp and
	// returns the stored form.
	Insert(ctx context.Context, threat models.Threat) (models.Threat, error)

	// ListAll returns every record, most-recent-first, fully materialized.
	ListAll(ctx context.Context) ([]models.Threat, error)

	// CountAll returns the total number of records.
	CountAll(ctx context.Context) (int64, error)

	// AverageRiskScore returns the arithmetic mean of risk scores across
	// all records, or 0 when no records exist.
	AverageRiskScore(ctx context.Context) (float64, error)

	// CountBySeverity returns the number of records whose severity exactly
	// matches label.
	CountBySeverity(ctx context.Context, label string) (int64, error)

	// RecentN returns the n most recently inserted records in chronological
	// (oldest-to-newest) order, reversed relative to ListAll for charting.
	RecentN(ctx context.Context, n int) ([]models.Threat, error)
}
