// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A known path hit
// with an unregistered method gets 404 instead of chi's 405, so the route's
// existence is not revealed. Registered methods go through router as usual.
//
// Patterns are compared to the raw request path; wildcard segments are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeAllows(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func routeAllows(router chi.Routes, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
