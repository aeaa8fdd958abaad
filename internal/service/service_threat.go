package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sentinelmind/shield/internal/adapter"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/store"
	"github.com/sentinelmind/shield/models"
)

// recentPointsLimit is how many of the latest records feed the dashboard's
// risk trend.
const recentPointsLimit = 10

// threatService is the concrete implementation of ThreatService.
// It owns validation of incoming records, the dashboard aggregates and the
// call-out to the external analysis provider; persistence is delegated to a
// ThreatRepository.
type threatService struct {
	threatRepository store.ThreatRepository
	analyzer         adapter.ThreatAnalyzer
	logger           *logger.Logger
}

// NewThreatService constructs a ThreatService over the given repository and
// analysis provider.
func NewThreatService(threatRepository store.ThreatRepository, analyzer adapter.ThreatAnalyzer, logger *logger.Logger) ThreatService {
	return &threatService{
		threatRepository: threatRepository,
		analyzer:         analyzer,
		logger:           logger,
	}
}

// Submit validates and stores a pre-analyzed record.
//
// Only structural validation is applied: Type and Content must be non-empty.
// Severity, intent and verdict values are stored verbatim — the analysis
// provider owns that vocabulary and new values must not be rejected here.
//
// Returns the stored record with its server-assigned ID and timestamp, or:
//   - ErrInvalidDataProvided if Type or Content is empty.
//   - A wrapped storage error if the repository call fails.
func (s *threatService) Submit(ctx context.Context, threat models.Threat) (models.Threat, error) {
	log := logger.FromContext(ctx)

	if threat.Type == "" || threat.Content == "" {
		log.Error().Str("type", threat.Type).Msg("invalid threat record provided")
		return models.Threat{}, ErrInvalidDataProvided
	}

	stored, err := s.threatRepository.Insert(ctx, threat)
	if err != nil {
		log.Err(err).Msg("threat record insertion failed")
		return models.Threat{}, fmt.Errorf("threat record insertion failed: %w", err)
	}

	return stored, nil
}

// Analyze sends the content to the external analysis provider and, on a
// successful verdict, persists the resulting record.
//
// Returns the provider's full analysis result, or:
//   - ErrInvalidDataProvided if contentType or content is empty.
//   - ErrAnalyzerUnavailable (wrapped) if the provider call fails; nothing is
//     written in that case.
//   - A wrapped storage error if persisting the verdict fails.
func (s *threatService) Analyze(ctx context.Context, contentType, content string) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	if contentType == "" || content == "" {
		log.Error().Str("type", contentType).Msg("invalid analysis request provided")
		return models.AnalysisResult{}, ErrInvalidDataProvided
	}

	result, err := s.analyzer.Analyze(ctx, contentType, content)
	if err != nil {
		log.Err(err).Str("type", contentType).Msg("analysis provider call failed")
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrAnalyzerUnavailable, err)
	}

	if _, err := s.threatRepository.Insert(ctx, result.ThreatRecord(contentType, content)); err != nil {
		log.Err(err).Msg("persisting analysis verdict failed")
		return models.AnalysisResult{}, fmt.Errorf("persisting analysis verdict failed: %w", err)
	}

	return result, nil
}

// History returns every stored record, most recent first.
func (s *threatService) History(ctx context.Context) ([]models.Threat, error) {
	threats, err := s.threatRepository.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("threat history retrieval failed")
		return nil, fmt.Errorf("threat history retrieval failed: %w", err)
	}

	return threats, nil
}

// DashboardStats computes the dashboard aggregates: total record count,
// average risk score rounded to the nearest integer, count of records with
// critical severity, and the last ten records as {risk_score, timestamp}
// points ordered oldest-first so they plot left to right.
func (s *threatService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	total, err := s.threatRepository.CountAll(ctx)
	if err != nil {
		log.Err(err).Msg("counting threat records failed")
		return models.DashboardStats{}, fmt.Errorf("counting threat records failed: %w", err)
	}

	avg, err := s.threatRepository.AverageRiskScore(ctx)
	if err != nil {
		log.Err(err).Msg("averaging risk scores failed")
		return models.DashboardStats{}, fmt.Errorf("averaging risk scores failed: %w", err)
	}

	critical, err := s.threatRepository.CountBySeverity(ctx, models.SeverityCritical)
	if err != nil {
		log.Err(err).Msg("counting critical records failed")
		return models.DashboardStats{}, fmt.Errorf("counting critical records failed: %w", err)
	}

	recent, err := s.threatRepository.RecentN(ctx, recentPointsLimit)
	if err != nil {
		log.Err(err).Msg("fetching recent records failed")
		return models.DashboardStats{}, fmt.Errorf("fetching recent records failed: %w", err)
	}

	points := make([]models.RiskPoint, 0, len(recent))
	for _, threat := range recent {
		points = append(points, models.RiskPoint{
			RiskScore: threat.RiskScore,
			Timestamp: threat.Timestamp,
		})
	}

	return models.DashboardStats{
		TotalThreats:    total,
		AvgRisk:         int(math.Round(avg)),
		CriticalThreats: critical,
		RecentThreats:   points,
	}, nil
}
