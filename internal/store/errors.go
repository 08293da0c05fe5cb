// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user is created with an email
	// that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrLinkNotFound is returned when a link lookup matches no record, or a
	// vote references a link that does not exist.
	ErrLinkNotFound = errors.New("link was not found")

	// ErrVoteAlreadyExists is returned when a user votes for the same link twice.
	ErrVoteAlreadyExists = errors.New("vote already exists")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
