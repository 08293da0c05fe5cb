// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrMalformedEmail   = errors.New("email is malformed")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyURL         = errors.New("url is required")
	ErrFieldTooLong     = errors.New("field is too long")
)
