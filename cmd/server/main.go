// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/handler"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/server"
	"github.com/MKhiriev/go-link-board/internal/service"
	"github.com/MKhiriev/go-link-board/internal/store"
	"github.com/MKhiriev/go-link-board/internal/workers"
	"github.com/MKhiriev/go-link-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("go-link-board")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	hashPool := workers.NewPool(cfg.App.HashWorkers)
	background := workers.NewWorkers(hashPool)
	background.Run()
	defer background.Stop()

	services, err := service.NewServices(storages, hashPool, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
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
