package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/handler"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/server"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-shop-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	shopDB, err := store.NewConnectPostgres(ctx, cfg.Storage.Shop, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to shop database")
	}
	localDB, err := store.NewConnectSQLite(ctx, cfg.Storage.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local state database")
	}

	storages := store.NewStorages(shopDB, localDB, log)

	client := adapter.NewHTTPClient(adapter.HTTPClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	}, log)

	services := service.NewServices(client, storages, *cfg, log)

	// push persisted API key, brand id, and logging flags onto the client
	if err := services.AccountService.ApplySettings(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying persisted settings")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers(services, cfg.Workers, log)
	ws.Start(ctx)
	defer ws.Stop()

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
