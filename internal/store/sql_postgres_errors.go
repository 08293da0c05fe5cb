// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the SQLSTATE code returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Non-driver errors are [KindOther].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return KindOther
}

// ClassifyPgError maps a SQLSTATE code onto an [ErrorKind].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return KindUniqueViolation
	case pgerrcode.ForeignKeyViolation: // 23503
		return KindForeignKeyViolation
	}

	return KindOther
}
