// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/utils"
)

// withIdentity resolves the "Authorization" header into the request identity
// and stores it in the request context under [utils.IdentityCtxKey].
//
// Requests without the header continue anonymously. A header that does not
// carry a valid token ends the request with HTTP 401 and a GraphQL shaped
// error body, so clients see the same "extensions.code" as for resolver
// errors.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.services.IdentityResolver.Resolve(ctx, r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("identity resolution failed")
			if _, werr := utils.WriteGraphQLError(w, statusFromError(err), err.Error(), codeFromError(err)); werr != nil {
				logger.FromRequest(r).Err(werr).Msg("writing error response failed")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
