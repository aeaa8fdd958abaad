package service

import (
	"github.com/sentinelmind/shield/internal/adapter"
	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/store"
)

type Services struct {
	AuthService   AuthService
	ThreatService ThreatService
}

func NewServices(storages *store.Storages, analyzer adapter.ThreatAnalyzer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		ThreatService: NewThreatService(storages.ThreatRepository, analyzer, logger),
	}
}
