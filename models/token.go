// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Claims is the decoded content of an identity token.
//
// A token carries exactly one application claim, the numeric user
// identifier; everything else in the token is signature metadata.
type Claims struct {
	UserID int64 `json:"userId"`
}

// Identity is the authentication state resolved for a single request.
//
// The zero value is the anonymous identity. An Identity is created fresh for
// every inbound request and never persisted.
type Identity struct {
	userID        int64
	authenticated bool
}

// Anonymous returns the identity of a request that carried no credentials.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of a request whose token was issued for userID.
func Authenticated(userID int64) Identity {
	return Identity{userID: userID, authenticated: true}
}

// UserID returns the authenticated user identifier and reports whether the
// request is authenticated at all.
func (i Identity) UserID() (int64, bool) {
	return i.userID, i.authenticated
}

// IsAnonymous reports whether the request carried no credentials.
func (i Identity) IsAnonymous() bool {
	return !i.authenticated
}
