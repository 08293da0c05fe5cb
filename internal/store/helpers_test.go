// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

// newSQLiteDB opens a private in-memory SQLite database with the schema applied.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}

	db, err := NewConnect(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
