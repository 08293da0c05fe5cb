// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hashing used by the authentication
// flow. Passwords are stored only as salted, adaptive one-way hashes.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext credentials into stored hashes and checks
// candidate credentials against them.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Hashing the same password twice
	// yields different results.
	Hash(password string) (string, error)

	// Verify checks password against a hash produced by Hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an error when
	// hash is malformed.
	Verify(password, hash string) (bool, error)
}
