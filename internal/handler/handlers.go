package handler

import (
	"errors"

	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/handler/http"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
