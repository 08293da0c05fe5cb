// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	UserRepository UserRepository
	LinkRepository LinkRepository
	VoteRepository VoteRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		LinkRepository: NewLinkRepository(db, log),
		VoteRepository: NewVoteRepository(db, log),
		db:             db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
