// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graph

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
)

// Error codes reported in "extensions.code".
const (
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeNoSuchUser         = "NO_SUCH_USER"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL"
)

const internalErrorMessage = "internal server error"

// errorCodeMap is checked in order; the first matching error wins.
var errorCodeMap = []struct {
	err  error
	code string
}{
	{service.ErrInvalidDataProvided, CodeBadUserInput},
	{service.ErrDuplicateEmail, CodeDuplicateEmail},
	{service.ErrNoSuchUser, CodeNoSuchUser},
	{service.ErrInvalidCredentials, CodeInvalidCredentials},
	{service.ErrInvalidToken, CodeInvalidToken},
	{service.ErrNotAuthenticated, CodeUnauthenticated},
	{service.ErrLinkNotFound, CodeNotFound},
	{service.ErrAlreadyVoted, CodeConflict},
}

// Error is a resolver error carrying a machine readable code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions is read by graphql-go and rendered under "extensions".
func (e *Error) Extensions() map[string]any {
	return map[string]any{"code": e.Code}
}

// CodeOf returns the code err maps to.
func CodeOf(err error) string {
	for _, m := range errorCodeMap {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return CodeInternal
}

// toGraphQLError converts a service error into an [*Error]. Unmapped errors
// are logged and hidden behind a generic message.
func toGraphQLError(ctx context.Context, err error) *Error {
	code := CodeOf(err)
	if code == CodeInternal {
		logger.FromContext(ctx).Err(err).Msg("resolver failed")
		return &Error{Message: internalErrorMessage, Code: code}
	}

	return &Error{Message: err.Error(), Code: code}
}
