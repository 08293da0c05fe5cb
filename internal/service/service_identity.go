// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-link-board/internal/utils"
	"github.com/MKhiriev/go-link-board/models"
)

type identityResolver struct {
	tokens TokenService
}

func NewIdentityResolver(tokens TokenService) IdentityResolver {
	return &identityResolver{tokens: tokens}
}

// Resolve implements [IdentityResolver].
//
//   - empty header → anonymous identity;
//   - "Bearer " prefix is stripped when present, an empty remainder is
//     [ErrInvalidToken];
//   - a token failing verification is [ErrInvalidToken], never anonymous.
func (r *identityResolver) Resolve(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Anonymous(), nil
	}

	token, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, err := r.tokens.Verify(ctx, token)
	if err != nil {
		return models.Anonymous(), err
	}

	return models.Authenticated(claims.UserID), nil
}
