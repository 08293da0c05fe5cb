// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of command line API clients.
//
// An [App] runs the seed flow against a running link board and prints the
// resulting feed.
package client
