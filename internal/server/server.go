// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/handler"
	"github.com/MKhiriev/go-link-board/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(cfg.RequestTimeout), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives and then shuts
// every started server down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	var wg sync.WaitGroup
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.httpServer.RunServer()
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.gRPCServer.RunServer()
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
