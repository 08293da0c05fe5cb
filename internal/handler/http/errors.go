// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-link-board/internal/graph"
	"github.com/MKhiriev/go-link-board/internal/service"
)

// ErrInvalidGzipBody is reported for request bodies that claim gzip encoding
// but cannot be decoded.
var ErrInvalidGzipBody = errors.New("invalid gzip data")

var errorStatusMap = map[error]int{
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// codeFromError reports err with the same codes the GraphQL layer uses.
func codeFromError(err error) string {
	return graph.CodeOf(err)
}
