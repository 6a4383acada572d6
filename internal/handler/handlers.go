package handler

import (
	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/handler/http"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, storages.Cases, cfg.Storage.Previews, cfg.App.Version, logger),
	}, nil
}
