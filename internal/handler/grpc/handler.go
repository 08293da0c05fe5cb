// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the link board's gRPC surface: the standard
// grpc.health.v1 service and a logging interceptor.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by the health service next to the
// server-wide "" entry.
const ServiceName = "linkboard.LinkBoard"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)
	return h
}

// Register attaches every service of the handler to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// SetServing flips the reported health of both the server and [ServiceName].
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs the method, resulting status code and duration of every
// unary call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	event := h.logger.Info()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
