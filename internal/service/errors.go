// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is returned when a request fails input validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateEmail is returned by signup when the email is already registered.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrNoSuchUser is returned by login for an unknown email.
	ErrNoSuchUser = errors.New("no such user found")

	// ErrInvalidCredentials is returned by login when the password does not match.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotAuthenticated is returned by operations that require a signed in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// errPostAnonymous is returned when an anonymous request tries to post.
	errPostAnonymous = fmt.Errorf("%w: cannot post without logging in", ErrNotAuthenticated)

	ErrLinkNotFound = errors.New("link not found")
	ErrAlreadyVoted = errors.New("user already voted for this link")

	ErrMissingTokenSignKey   = errors.New("token sign key is not configured")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
