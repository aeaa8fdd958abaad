package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/service"
	"github.com/sentinelmind/shield/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn             func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn       func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
	ensureDefaultUserFn func(ctx context.Context) error
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureDefaultUser(ctx context.Context) error {
	if m.ensureDefaultUserFn != nil {
		return m.ensureDefaultUserFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock ThreatService
// ─────────────────────────────────────────────

// mockThreatService implements service.ThreatService for unit tests.
type mockThreatService struct {
	submitFn         func(ctx context.Context, threat models.Threat) (models.Threat, error)
	analyzeFn        func(ctx context.Context, contentType, content string) (models.AnalysisResult, error)
	historyFn        func(ctx context.Context) ([]models.Threat, error)
	dashboardStatsFn func(ctx context.Context) (models.DashboardStats, error)
}

func (m *mockThreatService) Submit(ctx context.Context, threat models.Threat) (models.Threat, error) {
	return m.submitFn(ctx, threat)
}

func (m *mockThreatService) Analyze(ctx context.Context, contentType, content string) (models.AnalysisResult, error) {
	return m.analyzeFn(ctx, contentType, content)
}

func (m *mockThreatService) History(ctx context.Context) ([]models.Threat, error) {
	return m.historyFn(ctx)
}

func (m *mockThreatService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return m.dashboardStatsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithThreats builds a Handler with the given ThreatService mock.
func newHandlerWithThreats(t *testing.T, threats service.ThreatService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ThreatService: threats,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
