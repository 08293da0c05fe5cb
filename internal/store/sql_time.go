// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestamp scans a timestamp column into a time.Time. SQLite reports
// values of RETURNING clauses as text, so textual timestamps in the formats
// understood by go-sqlite3 are accepted alongside native time values.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case nil:
		*ts.t = time.Time{}
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}

	return fmt.Errorf("unparseable timestamp %q", s)
}
