// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fee-sponsor/internal/adapter"
	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/handler"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/server"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
	"github.com/MKhiriev/go-fee-sponsor/internal/workers"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-fee-sponsor")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		if !buildInfo.HasVersion() {
			log.Warn().Msg("no version set at build time or in config")
		}
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	ledgerAdapter, err := adapter.NewJSONRPCLedgerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger adapter")
	}

	sponsorMetrics := metrics.New()

	services, err := service.NewServices(ctx, storages, *cfg, ledgerAdapter, sponsorMetrics, log)
	if errors.Is(err, service.ErrSponsorWalletUnavailable) {
		log.Fatal().Err(err).Msg("sponsor wallet could not be loaded")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, sponsorMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := []workers.Worker{
		workers.NewBalanceMonitor(services.SponsorshipService, handlers, cfg.Workers.BalanceCheckInterval, log),
	}
	if storages.KeypairPurger != nil {
		jobs = append(jobs, workers.NewKeypairPurger(storages.KeypairPurger, cfg.Workers.KeypairPurgeInterval, log))
	}
	go workers.NewWorkers(jobs...).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
