// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the link board.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique address the user signs in with.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the salted one-way hash of the user's password.
	// The plaintext password is never stored; this value is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignupRequest carries the fields required to create a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest carries the credentials of an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is returned by successful signup and login operations.
type AuthPayload struct {
	// Token is the signed identity token the client presents as
	// "Authorization: Bearer <token>" on subsequent requests.
	Token string `json:"token"`

	// User is the account the token was issued for.
	User User `json:"user"`
}
