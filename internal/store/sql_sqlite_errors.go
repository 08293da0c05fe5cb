// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3 using
// the extended result codes of constraint failures.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return KindOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return KindUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return KindForeignKeyViolation
	}

	return KindOther
}
