// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the link board. Users, links and
// votes live in a relational database reached through database/sql, either
// PostgreSQL (pgx) or SQLite.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields [ErrNoUserWasFound] for an unknown email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID yields [ErrNoUserWasFound] for an unknown id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

type LinkRepository interface {
	CreateLink(ctx context.Context, link models.Link) (models.Link, error)
	// ListLinks returns every link in insertion order.
	ListLinks(ctx context.Context) ([]models.Link, error)
	// FindLinkByID yields [ErrLinkNotFound] for an unknown id.
	FindLinkByID(ctx context.Context, id int64) (models.Link, error)
	ListLinksByUser(ctx context.Context, userID int64) ([]models.Link, error)
}

type VoteRepository interface {
	// CreateVote yields [ErrVoteAlreadyExists] when the user already voted
	// for the link.
	CreateVote(ctx context.Context, vote models.Vote) (models.Vote, error)
	// ListVoters returns the users that voted for linkID in voting order.
	ListVoters(ctx context.Context, linkID int64) ([]models.User, error)
}
