// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/utils"
	"github.com/MKhiriev/go-link-board/models"
)

// tokenService is the HS256 JWT implementation of [TokenService].
// The sign key is fixed at construction and never changes afterwards, so
// every process sharing the key accepts tokens issued by any other.
type tokenService struct {
	signKey string
	params  utils.JWTParams
	logger  *logger.Logger
}

// NewTokenService builds a [TokenService] from the app configuration.
// An empty sign key is reported as [ErrMissingTokenSignKey].
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingTokenSignKey
	}

	return &tokenService{
		signKey: cfg.TokenSignKey,
		params: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Duration: cfg.TokenDuration,
		},
		logger: logger,
	}, nil
}

func (s *tokenService) Issue(ctx context.Context, claims models.Claims) (string, error) {
	token, err := utils.GenerateJWTToken(claims.UserID, s.params, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", claims.UserID).Msg("token signing failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	userID, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.params)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return models.Claims{UserID: userID}, nil
}
