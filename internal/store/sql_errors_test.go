// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, KindUniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, KindForeignKeyViolation, c.Classify(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, KindUniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Equal(t, KindOther, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, KindOther, c.Classify(errors.New("plain")))
	assert.Equal(t, KindOther, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.Equal(t, KindUniqueViolation, c.Classify(unique))
	assert.Equal(t, KindUniqueViolation, c.Classify(pk))
	assert.Equal(t, KindForeignKeyViolation, c.Classify(fmt.Errorf("wrapped: %w", fk)))
	assert.Equal(t, KindOther, c.Classify(notNull))
	assert.Equal(t, KindOther, c.Classify(errors.New("plain")))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "unique_violation", KindUniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", KindForeignKeyViolation.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "board.db?_foreign_keys=on", sqliteDSN("board.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "board.db?_fk=1", sqliteDSN("board.db?_fk=1"))
}
