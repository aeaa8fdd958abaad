package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/models"
)

// threatColumns is the stable column order shared by every SELECT against
// the "threats" table; scanThreat relies on it.
var threatColumns = []string{"id", "type", "content", "risk_score", "severity", "intent", "verdict", "timestamp"}

// threatRepository is the SQL-backed implementation of [ThreatRepository].
// The "threats" table is append-only: records are inserted once and never
// mutated, so every read can run without coordination beyond the storage
// engine's own locking.
type threatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThreatRepository constructs a [ThreatRepository] backed by the provided
// database connection and logger.
func NewThreatRepository(db *DB, logger *logger.Logger) ThreatRepository {
	logger.Debug().Msg("creating threat repository")
	return &threatRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends a new immutable record. The ID and timestamp are assigned
// by the database (RETURNING clause) so that insertion order and timestamp
// order stay consistent under the engine's write serialization.
func (r *threatRepository) Insert(ctx context.Context, threat models.Threat) (models.Threat, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(threat.TableName()).
		Columns("type", "content", "risk_score", "severity", "intent", "verdict").
		Values(threat.Type, threat.Content, threat.RiskScore, threat.Severity, threat.Intent, threat.Verdict).
		Suffix("RETURNING id, timestamp").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*threatRepository.Insert").Msg("error: building query")
		return models.Threat{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&threat.ID, &threat.Timestamp); err != nil {
		log.Err(err).Str("func", "*threatRepository.Insert").Msg("error: inserting threat record")
		return models.Threat{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return threat, nil
}

// ListAll returns every record most-recent-first. The result is fully
// materialized; callers needing filtering do it over this slice.
func (r *threatRepository) ListAll(ctx context.Context) ([]models.Threat, error) {
	builder := r.db.builder.
		Select(threatColumns...).
		From(models.Threat{}.TableName()).
		OrderBy("timestamp DESC", "id DESC")

	return r.queryThreats(ctx, "*threatRepository.ListAll", builder)
}

// CountAll returns the total number of stored records.
func (r *threatRepository) CountAll(ctx context.Context) (int64, error) {
	builder := r.db.builder.
		Select("COUNT(*)").
		From(models.Threat{}.TableName())

	return r.queryCount(ctx, "*threatRepository.CountAll", builder)
}

// AverageRiskScore returns the arithmetic mean of risk_score across all
// records. COALESCE pins the empty-table case to 0 so callers never see
// NULL or a division artifact.
func (r *threatRepository) AverageRiskScore(ctx context.Context) (float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COALESCE(AVG(risk_score), 0)").
		From(models.Threat{}.TableName()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*threatRepository.AverageRiskScore").Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var avg float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		log.Err(err).Str("func", "*threatRepository.AverageRiskScore").Msg("error: scanning average")
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return avg, nil
}

// CountBySeverity returns the number of records whose severity attribute
// exactly matches label.
func (r *threatRepository) CountBySeverity(ctx context.Context, label string) (int64, error) {
	builder := r.db.builder.
		Select("COUNT(*)").
		From(models.Threat{}.TableName()).
		Where(sq.Eq{"severity": label})

	return r.queryCount(ctx, "*threatRepository.CountBySeverity", builder)
}

// RecentN returns the n most recently inserted records in chronological
// order. The query fetches newest-first and the slice is reversed in place,
// mirroring how the dashboard charts its risk trajectory.
func (r *threatRepository) RecentN(ctx context.Context, n int) ([]models.Threat, error) {
	if n <= 0 {
		return []models.Threat{}, nil
	}

	builder := r.db.builder.
		Select(threatColumns...).
		From(models.Threat{}.TableName()).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(n))

	threats, err := r.queryThreats(ctx, "*threatRepository.RecentN", builder)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(threats)-1; i < j; i, j = i+1, j-1 {
		threats[i], threats[j] = threats[j], threats[i]
	}

	return threats, nil
}

// queryThreats executes a SELECT built over threatColumns and materializes
// the full result set.
func (r *threatRepository) queryThreats(ctx context.Context, caller string, builder sq.SelectBuilder) ([]models.Threat, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: querying threat records")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	threats := make([]models.Threat, 0)
	for rows.Next() {
		var t models.Threat
		if err := rows.Scan(&t.ID, &t.Type, &t.Content, &t.RiskScore, &t.Severity, &t.Intent, &t.Verdict, &t.Timestamp); err != nil {
			log.Err(err).Str("func", caller).Msg("error: scanning threat record")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		threats = append(threats, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: iterating threat records")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return threats, nil
}

// queryCount executes a single-value COUNT query.
func (r *threatRepository) queryCount(ctx context.Context, caller string, builder sq.SelectBuilder) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", caller).Msg("error: scanning count")
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return count, nil
}
