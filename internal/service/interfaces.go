// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	// Issue signs a token carrying claims.
	Issue(ctx context.Context, claims models.Claims) (string, error)
	// Verify checks the token and returns its claims. Every failure is
	// reported as [ErrInvalidToken] with zero claims.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// IdentityResolver turns the Authorization header of a request into the
// request identity.
type IdentityResolver interface {
	// Resolve returns the anonymous identity for an empty header. A header
	// that is present but does not carry a valid token is an error.
	Resolve(ctx context.Context, authorizationHeader string) (models.Identity, error)
}

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthPayload, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error)
}

type LinkService interface {
	Feed(ctx context.Context) ([]models.Link, error)
	// Post creates a link authored by the authenticated user of ctx.
	Post(ctx context.Context, req models.PostRequest) (models.Link, error)
	// Vote records a vote of the authenticated user of ctx.
	Vote(ctx context.Context, linkID int64) (models.Vote, error)
	// PostedBy returns the author of link, or nil when it has none.
	PostedBy(ctx context.Context, link models.Link) (*models.User, error)
	Voters(ctx context.Context, linkID int64) ([]models.User, error)
	LinksByUser(ctx context.Context, userID int64) ([]models.Link, error)
	User(ctx context.Context, userID int64) (models.User, error)
	Link(ctx context.Context, linkID int64) (models.Link, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
