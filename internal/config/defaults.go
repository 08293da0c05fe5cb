// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

const (
	// DefaultPasswordHashCost matches the bcrypt cost the service has always
	// hashed passwords with.
	DefaultPasswordHashCost = 10

	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			HashWorkers:      runtime.NumCPU(),
			Version:          "N/A",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:4000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:4000",
			RequestTimeout: 15 * time.Second,
			SeedEmail:      "seed@linkboard.local",
			SeedPassword:   "seed-password",
			SeedName:       "Seed",
		},
	}
}
