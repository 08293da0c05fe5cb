// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the link board.
//
// It wires the GraphQL endpoint and the version endpoint into a chi router.
// Cross-cutting concerns such as request tracing, access logging, response
// compression and identity resolution are handled in this package before
// requests reach the resolvers.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-link-board/internal/graph"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
	"github.com/graph-gophers/graphql-go/relay"
)

type Handler struct {
	services *service.Services

	// graphQL serves POST /graphql.
	graphQL http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		graphQL:  &relay.Handler{Schema: graph.NewSchema(services.AuthService, services.LinkService, logger)},
		logger:   logger,
	}
}
