package main

import (
	"context"
	"fmt"

	"github.com/sentinelmind/shield/internal/adapter"
	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/handler"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/server"
	"github.com/sentinelmind/shield/internal/service"
	"github.com/sentinelmind/shield/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shield-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	analyzer, err := adapter.NewThreatAnalyzer(cfg.Analyzer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating threat analyzer")
	}

	services := service.NewServices(storages, analyzer, *cfg, log)

	if err := services.AuthService.EnsureDefaultUser(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding default account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
