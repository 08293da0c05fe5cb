// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/workers"
)

// PooledHasher runs every call of the wrapped [PasswordHasher] on an
// [workers.Executor], bounding how many hashes are computed at once.
type PooledHasher struct {
	hasher   PasswordHasher
	executor workers.Executor
}

func NewPooledHasher(hasher PasswordHasher, executor workers.Executor) *PooledHasher {
	return &PooledHasher{hasher: hasher, executor: executor}
}

func (p *PooledHasher) Hash(password string) (string, error) {
	var (
		hash    string
		hashErr error
	)
	if err := p.executor.Do(func() {
		hash, hashErr = p.hasher.Hash(password)
	}); err != nil {
		return "", fmt.Errorf("error scheduling credential hashing: %w", err)
	}

	return hash, hashErr
}

func (p *PooledHasher) Verify(password, hash string) (bool, error) {
	var (
		ok        bool
		verifyErr error
	)
	if err := p.executor.Do(func() {
		ok, verifyErr = p.hasher.Verify(password, hash)
	}); err != nil {
		return false, fmt.Errorf("error scheduling credential verification: %w", err)
	}

	return ok, verifyErr
}
