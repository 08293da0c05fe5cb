// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. All of them are fatal at startup.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// configured. The server cannot issue or verify identity tokens without it.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost outside the supported range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
