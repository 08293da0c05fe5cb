// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/migrations"
	"github.com/Masterminds/squirrel"
)

// DB is a database/sql handle bound to one SQL dialect. It carries the query
// builder with the dialect's placeholder format and the classifier for the
// driver's errors.
type DB struct {
	*sql.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify reports how err relates to the schema constraints.
func (db *DB) classify(err error) ErrorKind {
	if db.errorClassificator == nil {
		return KindOther
	}
	return db.errorClassificator.Classify(err)
}
