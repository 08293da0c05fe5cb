// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-link-board/internal/adapter"
	"github.com/MKhiriev/go-link-board/internal/client"
	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
)

func main() {
	log := logger.NewConsoleLogger("seed")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	version, err := serverAdapter.Version(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("server version is unavailable")
	} else {
		log.Info().Str("server_version", version).Msg("connected")
	}

	seed := service.NewClientSeedService(serverAdapter, cfg.SeedAccount, service.SeedLinks, log)

	var app client.Client = client.NewApp(seed, os.Stdout, 0, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("seed run error")
	}
}
