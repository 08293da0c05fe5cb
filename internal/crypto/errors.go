// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidCredentialEncoding = errors.New("credential is not valid UTF-8")
	ErrCredentialTooLong         = errors.New("credential exceeds 72 bytes")
	ErrMalformedHash             = errors.New("malformed password hash")
	ErrInvalidHashCost           = errors.New("invalid password hash cost")
)
