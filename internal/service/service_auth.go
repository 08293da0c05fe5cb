// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-link-board/internal/crypto"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/store"
	"github.com/MKhiriev/go-link-board/models"
)

// authService is the concrete implementation of AuthService.
// It registers users, checks credentials and issues identity tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the stored password hashes.
	hasher crypto.PasswordHasher

	// tokens issues the token returned with every successful signup or login.
	tokens TokenService

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Signup creates a new user account and signs the user in.
//
// Returns the issued token with the persisted user or:
//   - ErrInvalidDataProvided if any field is empty or cannot be hashed.
//   - ErrDuplicateEmail if the email is already registered. No token is issued.
//   - A wrapped error for any other storage or token failure.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthPayload, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" || req.Name == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.AuthPayload{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrCredentialTooLong) || errors.Is(err, crypto.ErrInvalidCredentialEncoding) {
			return models.AuthPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.AuthPayload{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthPayload{}, ErrDuplicateEmail
		}
		return models.AuthPayload{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.payload(ctx, user)
}

// Login authenticates an existing user.
//
// Returns the issued token with the stored user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrNoSuchUser if no account uses the email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.AuthPayload{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthPayload{}, ErrNoSuchUser
		}
		return models.AuthPayload{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password verification failed")
		return models.AuthPayload{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.AuthPayload{}, ErrInvalidCredentials
	}

	return a.payload(ctx, user)
}

func (a *authService) payload(ctx context.Context, user models.User) (models.AuthPayload, error) {
	token, err := a.tokens.Issue(ctx, models.Claims{UserID: user.ID})
	if err != nil {
		return models.AuthPayload{}, err
	}

	return models.AuthPayload{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
