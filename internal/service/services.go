// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/crypto"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/store"
	"github.com/MKhiriev/go-link-board/internal/workers"
	"github.com/MKhiriev/go-link-board/models"
)

type Services struct {
	AuthService      AuthService
	LinkService      LinkService
	TokenService     TokenService
	IdentityResolver IdentityResolver
	AppInfoService   AppInfoService
}

// NewServices wires the business layer on top of storages. Password hashing
// is offloaded to executor.
func NewServices(storages *store.Storages, executor workers.Executor, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, crypto.NewPooledHasher(hasher, executor), tokens, logger)
	linkService := NewLinkService(storages.LinkRepository, storages.VoteRepository, storages.UserRepository, logger)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(authService),
		LinkService:      NewLinkValidationService().Wrap(linkService),
		TokenService:     tokens,
		IdentityResolver: NewIdentityResolver(tokens),
		AppInfoService:   appInfo,
	}, nil
}
