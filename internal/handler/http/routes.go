// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds every request; zero disables
// the bound.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)
		r.Post("/graphql", h.graphQL.ServeHTTP)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
