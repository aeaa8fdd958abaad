package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelmind/shield/internal/store"
	"github.com/sentinelmind/shield/models"
)

func TestDashboardStats_Success(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	stats := models.DashboardStats{
		TotalThreats:    17,
		AvgRisk:         52,
		CriticalThreats: 4,
		RecentThreats: []models.RiskPoint{
			{RiskScore: 10, Timestamp: base},
			{RiskScore: 90, Timestamp: base.Add(time.Hour)},
		},
	}

	threats := &mockThreatService{
		dashboardStatsFn: func(_ context.Context) (models.DashboardStats, error) {
			return stats, nil
		},
	}

	h := newHandlerWithThreats(t, threats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// The dashboard page depends on these exact JSON keys.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "totalThreats")
	assert.Contains(t, raw, "avgRisk")
	assert.Contains(t, raw, "criticalThreats")
	assert.Contains(t, raw, "recentThreats")

	var got models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stats, got)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	threats := &mockThreatService{
		dashboardStatsFn: func(_ context.Context) (models.DashboardStats, error) {
			return models.DashboardStats{RecentThreats: []models.RiskPoint{}}, nil
		},
	}

	h := newHandlerWithThreats(t, threats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalThreats": 0, "avgRisk": 0, "criticalThreats": 0, "recentThreats": []}`, rec.Body.String())
}

func TestDashboardStats_StorageError(t *testing.T) {
	threats := &mockThreatService{
		dashboardStatsFn: func(_ context.Context) (models.DashboardStats, error) {
			return models.DashboardStats{}, store.ErrStorageUnavailable
		},
	}

	h := newHandlerWithThreats(t, threats)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
