package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/crypto"
	"github.com/MKhiriev/trade-journal/internal/handler"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/server"
	"github.com/MKhiriev/trade-journal/internal/service"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/workers"
	"github.com/MKhiriev/trade-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("trade-journal-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Int("verify_pool_size", cfg.Workers.VerifyPoolSize).
		Int("verify_queue_size", cfg.Workers.VerifyQueueSize).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	hasher, err := crypto.NewPasswordHasher(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pool := workers.NewPool(cfg.Workers, log)
	backgroundWorkers := workers.NewWorkers(pool)
	backgroundWorkers.Run()

	services, err := service.NewServices(storages, hasher, pool, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// blocks until a stop signal; the HTTP server is drained before the pool
	srv.RunServer()
	backgroundWorkers.Shutdown()

	log.Info().Msg("trade-journal server stopped")
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
