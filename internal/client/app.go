// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
)

// App seeds the board and writes the feed as indented JSON to out.
type App struct {
	seed    service.ClientSeedService
	out     io.Writer
	timeout time.Duration

	logger *logger.Logger
}

// NewApp returns an [App]. A zero timeout leaves the run unbounded apart
// from per-request adapter timeouts.
func NewApp(seed service.ClientSeedService, out io.Writer, timeout time.Duration, logger *logger.Logger) *App {
	return &App{
		seed:    seed,
		out:     out,
		timeout: timeout,
		logger:  logger,
	}
}

func (a *App) Run() error {
	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	links, err := a.seed.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	a.logger.Info().Int("links", len(links)).Msg("seed finished")

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(links); err != nil {
		return fmt.Errorf("print feed: %w", err)
	}

	return nil
}
