// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the link board API.
//
// The primary abstraction is [ServerAdapter], which decouples callers such as
// the seed command from the underlying protocol. The package ships a GraphQL
// over HTTP implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// GraphQL error codes so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrDuplicateEmail] for
// DUPLICATE_EMAIL, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the link board
// server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup creates an account. On success the returned token is stored
	// via SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthPayload, error)

	// Login signs an existing account in. On success the returned token is
	// stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error)

	// Post shares a link as the signed in user.
	Post(ctx context.Context, req models.PostRequest) (models.Link, error)

	// Feed lists every link on the board.
	Feed(ctx context.Context) ([]models.Link, error)

	// Version returns the version reported by the server.
	Version(ctx context.Context) (string, error)
}
