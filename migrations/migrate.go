// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded database schema of the link board
// and applies it with goose. Every supported driver has its own directory of
// SQL files with the same version numbers.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("migration error: db is nil")
	ErrUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

type source struct {
	dialect string
	dir     string
}

var sources = map[string]source{
	"pgx":     {dialect: "pgx", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given database/sql driver
// name ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	src, ok := sources[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(src.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, src.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
