// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for request-scoped context values, HTTP response writing,
// trace id generation and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key the resolved request identity is stored under.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext returns the identity stored in ctx. A context that
// never went through identity resolution yields the anonymous identity.
//
// Example usage:
//
//	userID, ok := utils.IdentityFromContext(ctx).UserID()
//	if !ok {
//	    // anonymous request
//	}
func IdentityFromContext(ctx context.Context) models.Identity {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok {
		return models.Anonymous()
	}
	return identity
}
