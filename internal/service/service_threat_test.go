package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/mock"
	"github.com/sentinelmind/shield/internal/store"
	"github.com/sentinelmind/shield/models"
)

// ─────────────────────────────────────────────
// Mock: store.ThreatRepository
// ─────────────────────────────────────────────

type mockThreatRepository struct {
	insertFn          func(ctx context.Context, threat models.Threat) (models.Threat, error)
	listAllFn         func(ctx context.Context) ([]models.Threat, error)
	countAllFn        func(ctx context.Context) (int64, error)
	averageRiskFn     func(ctx context.Context) (float64, error)
	countBySeverityFn func(ctx context.Context, severity string) (int64, error)
	recentNFn         func(ctx context.Context, n int) ([]models.Threat, error)
}

func (m *mockThreatRepository) Insert(ctx context.Context, threat models.Threat) (models.Threat, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, threat)
	}
	threat.ID = 1
	threat.Timestamp = time.Now()
	return threat, nil
}

func (m *mockThreatRepository) ListAll(ctx context.Context) ([]models.Threat, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []models.Threat{}, nil
}

func (m *mockThreatRepository) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockThreatRepository) AverageRiskScore(ctx context.Context) (float64, error) {
	if m.averageRiskFn != nil {
		return m.averageRiskFn(ctx)
	}
	return 0, nil
}

func (m *mockThreatRepository) CountBySeverity(ctx context.Context, severity string) (int64, error) {
	if m.countBySeverityFn != nil {
		return m.countBySeverityFn(ctx, severity)
	}
	return 0, nil
}

func (m *mockThreatRepository) RecentN(ctx context.Context, n int) ([]models.Threat, error) {
	if m.recentNFn != nil {
		return m.recentNFn(ctx, n)
	}
	return []models.Threat{}, nil
}

func newThreatService(t *testing.T, repo store.ThreatRepository) (ThreatService, *mock.MockThreatAnalyzer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	analyzer := mock.NewMockThreatAnalyzer(ctrl)
	return NewThreatService(repo, analyzer, logger.Nop()), analyzer
}

func TestThreatService_Submit_Success(t *testing.T) {
	now := time.Now()
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			threat.ID = 42
			threat.Timestamp = now
			return threat, nil
		},
	}
	svc, _ := newThreatService(t, repo)

	stored, err := svc.Submit(context.Background(), models.Threat{
		Type:      models.ThreatTypeURL,
		Content:   "http://evil.example",
		RiskScore: 80,
		Severity:  models.SeverityHigh,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.ID)
	assert.Equal(t, now, stored.Timestamp)
}

func TestThreatService_Submit_MissingFields(t *testing.T) {
	svc, _ := newThreatService(t, &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			t.Fatal("Insert must not be called for invalid records")
			return models.Threat{}, nil
		},
	})

	tests := []struct {
		name   string
		threat models.Threat
	}{
		{"empty type", models.Threat{Content: "something"}},
		{"empty content", models.Threat{Type: models.ThreatTypeURL}},
		{"both empty", models.Threat{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.threat)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestThreatService_Submit_UnknownSeverityStored(t *testing.T) {
	// Provider vocabulary is not validated; new values pass through.
	var inserted models.Threat
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			inserted = threat
			return threat, nil
		},
	}
	svc, _ := newThreatService(t, repo)

	_, err := svc.Submit(context.Background(), models.Threat{
		Type:     "url",
		Content:  "http://example.com",
		Severity: "Apocalyptic",
	})

	require.NoError(t, err)
	assert.Equal(t, "Apocalyptic", inserted.Severity)
}

func TestThreatService_Submit_StorageError(t *testing.T) {
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			return models.Threat{}, store.ErrStorageUnavailable
		},
	}
	svc, _ := newThreatService(t, repo)

	_, err := svc.Submit(context.Background(), models.Threat{Type: "url", Content: "x"})

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestThreatService_Analyze_Success(t *testing.T) {
	verdict := models.AnalysisResult{
		RiskScore: 91,
		Severity:  models.SeverityCritical,
		Intent:    "credential theft",
		Verdict:   "phishing",
	}
	var inserted models.Threat
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			inserted = threat
			threat.ID = 1
			return threat, nil
		},
	}
	svc, analyzer := newThreatService(t, repo)
	analyzer.EXPECT().
		Analyze(gomock.Any(), models.ThreatTypeURL, "http://evil.example/login").
		Return(verdict, nil)

	result, err := svc.Analyze(context.Background(), models.ThreatTypeURL, "http://evil.example/login")

	require.NoError(t, err)
	assert.Equal(t, verdict, result)
	assert.Equal(t, models.ThreatTypeURL, inserted.Type)
	assert.Equal(t, "http://evil.example/login", inserted.Content)
	assert.Equal(t, 91, inserted.RiskScore)
	assert.Equal(t, models.SeverityCritical, inserted.Severity)
	assert.Equal(t, "phishing", inserted.Verdict)
}

func TestThreatService_Analyze_EmptyInput(t *testing.T) {
	svc, _ := newThreatService(t, &mockThreatRepository{})

	_, err := svc.Analyze(context.Background(), "", "content")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Analyze(context.Background(), "url", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestThreatService_Analyze_ProviderFailure(t *testing.T) {
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			t.Fatal("nothing must be persisted when the provider fails")
			return models.Threat{}, nil
		},
	}
	svc, analyzer := newThreatService(t, repo)
	analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AnalysisResult{}, errors.New("provider timeout"))

	_, err := svc.Analyze(context.Background(), "url", "http://example.com")

	assert.ErrorIs(t, err, ErrAnalyzerUnavailable)
}

func TestThreatService_Analyze_PersistFailure(t *testing.T) {
	repo := &mockThreatRepository{
		insertFn: func(ctx context.Context, threat models.Threat) (models.Threat, error) {
			return models.Threat{}, store.ErrStorageUnavailable
		},
	}
	svc, analyzer := newThreatService(t, repo)
	analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AnalysisResult{RiskScore: 10}, nil)

	_, err := svc.Analyze(context.Background(), "url", "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrAnalyzerUnavailable)
}

func TestThreatService_History(t *testing.T) {
	threats := []models.Threat{
		{ID: 3, Type: "url", Content: "c"},
		{ID: 2, Type: "email", Content: "b"},
		{ID: 1, Type: "url", Content: "a"},
	}
	repo := &mockThreatRepository{
		listAllFn: func(ctx context.Context) ([]models.Threat, error) {
			return threats, nil
		},
	}
	svc, _ := newThreatService(t, repo)

	got, err := svc.History(context.Background())

	require.NoError(t, err)
	assert.Equal(t, threats, got)
}

func TestThreatService_History_Error(t *testing.T) {
	repo := &mockThreatRepository{
		listAllFn: func(ctx context.Context) ([]models.Threat, error) {
			return nil, store.ErrStorageUnavailable
		},
	}
	svc, _ := newThreatService(t, repo)

	_, err := svc.History(context.Background())

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestThreatService_DashboardStats(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	recent := []models.Threat{
		{ID: 1, RiskScore: 10, Timestamp: base},
		{ID: 2, RiskScore: 55, Timestamp: base.Add(time.Hour)},
		{ID: 3, RiskScore: 90, Timestamp: base.Add(2 * time.Hour)},
	}
	repo := &mockThreatRepository{
		countAllFn:    func(ctx context.Context) (int64, error) { return 17, nil },
		averageRiskFn: func(ctx context.Context) (float64, error) { return 51.6, nil },
		countBySeverityFn: func(ctx context.Context, severity string) (int64, error) {
			assert.Equal(t, models.SeverityCritical, severity)
			return 4, nil
		},
		recentNFn: func(ctx context.Context, n int) ([]models.Threat, error) {
			assert.Equal(t, 10, n)
			return recent, nil
		},
	}
	svc, _ := newThreatService(t, repo)

	stats, err := svc.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(17), stats.TotalThreats)
	assert.Equal(t, 52, stats.AvgRisk) // 51.6 rounds to 52
	assert.Equal(t, int64(4), stats.CriticalThreats)
	require.Len(t, stats.RecentThreats, 3)
	assert.Equal(t, models.RiskPoint{RiskScore: 10, Timestamp: base}, stats.RecentThreats[0])
	assert.Equal(t, models.RiskPoint{RiskScore: 90, Timestamp: base.Add(2 * time.Hour)}, stats.RecentThreats[2])
}

func TestThreatService_DashboardStats_Empty(t *testing.T) {
	svc, _ := newThreatService(t, &mockThreatRepository{})

	stats, err := svc.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalThreats)
	assert.Equal(t, 0, stats.AvgRisk)
	assert.Equal(t, int64(0), stats.CriticalThreats)
	assert.NotNil(t, stats.RecentThreats)
	assert.Empty(t, stats.RecentThreats)
}

func TestThreatService_DashboardStats_RepoError(t *testing.T) {
	repo := &mockThreatRepository{
		countAllFn: func(ctx context.Context) (int64, error) {
			return 0, store.ErrStorageUnavailable
		},
	}
	svc, _ := newThreatService(t, repo)

	_, err := svc.DashboardStats(context.Background())

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}
