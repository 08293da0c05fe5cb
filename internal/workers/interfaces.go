// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and a bounded Pool that offloads
// CPU-bound jobs such as password hashing.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines which must be
// released on shutdown.
type Stopper interface {
	Stop()
}

// Executor runs fn on a worker goroutine and waits for it to finish.
type Executor interface {
	Do(fn func()) error
}
