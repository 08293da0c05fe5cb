// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport level errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Errors reported by the API in the "extensions.code" field.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrNoSuchUser         = errors.New("no such user")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyResponse = errors.New("empty response data")
)
