// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()

	if first == second {
		t.Error("expected distinct ids")
	}
	id, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
	if id.Version() != 7 {
		t.Errorf("expected UUIDv7, got version %d", id.Version())
	}
}
