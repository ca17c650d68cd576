package main

import (
	"context"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/config"
	myHTTP "github.com/JegankarthiMCA/i/internal/handler/http"
	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/server"
	"github.com/JegankarthiMCA/i/internal/service"
	"github.com/JegankarthiMCA/i/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("learn-app-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.IsDevSigningSecret() {
		log.Warn().Msg("no token sign key configured, using the built-in development secret; do not run this in production")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
