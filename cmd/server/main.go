package main

import (
	"context"
	"fmt"

	"github.com/jmarr/casefolio/internal/blob"
	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/handler"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/server"
	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("casefolio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	gateway, err := blob.NewS3Gateway(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob gateway")
	}

	services := service.NewServices(storages, gateway, log)

	handlers, err := handler.NewHandlers(services, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(cfg.Workers, cfg.Storage.Previews, log)
	background.Run()
	defer background.Stop()

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
