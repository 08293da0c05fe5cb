// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorKind is the driver independent category of a failed statement.
type ErrorKind int

const (
	// KindOther covers every error that is not a constraint violation.
	KindOther ErrorKind = iota

	// KindUniqueViolation reports a duplicate value in a unique column.
	KindUniqueViolation

	// KindForeignKeyViolation reports a reference to a missing row.
	KindForeignKeyViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindUniqueViolation:
		return "unique_violation"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "other"
	}
}

// ErrorClassificator maps driver specific errors onto an [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}
