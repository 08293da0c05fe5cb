// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// maxCredentialLen is the input limit of bcrypt.
const maxCredentialLen = 72

// bcryptHasher is the [PasswordHasher] backed by bcrypt. The salt is
// generated per call and embedded in the 60-byte output.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt [PasswordHasher] with the given cost.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := checkCredential(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing credential: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

func checkCredential(password string) error {
	if !utf8.ValidString(password) {
		return ErrInvalidCredentialEncoding
	}
	if len(password) > maxCredentialLen {
		return ErrCredentialTooLong
	}
	return nil
}
