// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/handler/grpc"
	"github.com/MKhiriev/go-link-board/internal/handler/http"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
)

// errNoHandlersAreCreated means neither transport is configured. The server
// refuses to start in that case.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers holds one handler per configured transport. A nil field means the
// transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
