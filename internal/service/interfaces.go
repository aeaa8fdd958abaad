package service

import (
	"context"

	"github.com/sentinelmind/shield/models"
)

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureDefaultUser creates the bootstrap account if it does not exist yet.
	// Safe to call on every startup.
	EnsureDefaultUser(ctx context.Context) error
}

type ThreatService interface {
	Submit(ctx context.Context, threat models.Threat) (models.Threat, error)
	Analyze(ctx context.Context, contentType, content string) (models.AnalysisResult, error)
	History(ctx context.Context) ([]models.Threat, error)
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}
