// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/adapter"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
)

// SeedLinks are posted by every run of the seed command.
var SeedLinks = []models.PostRequest{
	{Description: "epic", URL: "kennan.tech"},
}

type clientSeedService struct {
	adapter adapter.ServerAdapter
	account models.SignupRequest
	links   []models.PostRequest

	logger *logger.Logger
}

func NewClientSeedService(serverAdapter adapter.ServerAdapter, account models.SignupRequest, links []models.PostRequest, logger *logger.Logger) ClientSeedService {
	return &clientSeedService{
		adapter: serverAdapter,
		account: account,
		links:   links,
		logger:  logger,
	}
}

func (s *clientSeedService) Seed(ctx context.Context) ([]models.Link, error) {
	if err := s.signIn(ctx); err != nil {
		return nil, err
	}

	for _, req := range s.links {
		link, err := s.adapter.Post(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("posting %q: %w", req.URL, err)
		}
		s.logger.Info().Int64("link_id", link.ID).Str("url", link.URL).Msg("link posted")
	}

	links, err := s.adapter.Feed(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	return links, nil
}

// signIn creates the seed account and falls back to logging in when it
// already exists.
func (s *clientSeedService) signIn(ctx context.Context) error {
	payload, err := s.adapter.Signup(ctx, s.account)
	if err == nil {
		s.logger.Info().Int64("user_id", payload.User.ID).Msg("seed account created")
		return nil
	}
	if !errors.Is(err, adapter.ErrDuplicateEmail) {
		return fmt.Errorf("seed account signup: %w", err)
	}

	payload, err = s.adapter.Login(ctx, models.LoginRequest{Email: s.account.Email, Password: s.account.Password})
	if err != nil {
		return fmt.Errorf("seed account login: %w", err)
	}

	s.logger.Info().Int64("user_id", payload.User.ID).Msg("seed account signed in")
	return nil
}
