// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 10, 17, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{name: "native", src: want},
		{name: "sqlite text", src: "2026-10-17 12:30:00"},
		{name: "rfc3339 bytes", src: []byte("2026-10-17T12:30:00Z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, timestamp{&got}.Scan(tt.src))
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}
}

func TestTimestamp_ScanInvalid(t *testing.T) {
	var got time.Time
	assert.Error(t, timestamp{&got}.Scan("yesterday"))
	assert.Error(t, timestamp{&got}.Scan(42))

	require.NoError(t, timestamp{&got}.Scan(nil))
	assert.True(t, got.IsZero())
}
