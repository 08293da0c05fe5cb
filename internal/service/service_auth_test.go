// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-link-board/internal/crypto"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/mock"
	"github.com/MKhiriev/go-link-board/internal/store"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	tokens *mock.MockTokenService
}

func newAuthServiceWithMocks(t *testing.T) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
	}
	return NewAuthService(m.users, m.hasher, m.tokens, logger.Nop()), m
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	ctx := context.Background()

	gomock.InOrder(
		m.hasher.EXPECT().Hash("pw").Return("$2a$hash", nil),
		m.users.EXPECT().CreateUser(ctx, models.User{Email: "a@x.com", Name: "A", PasswordHash: "$2a$hash"}).
			Return(models.User{ID: 1, Email: "a@x.com", Name: "A", PasswordHash: "$2a$hash"}, nil),
		m.tokens.EXPECT().Issue(ctx, models.Claims{UserID: 1}).Return("tok", nil),
	)

	got, err := svc.Signup(ctx, models.SignupRequest{Email: "  A@X.com ", Password: "pw", Name: "A"})

	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, "a@x.com", got.User.Email)
}

func TestSignup_EmptyFields_NoWorkDone(t *testing.T) {
	tests := map[string]models.SignupRequest{
		"empty email":    {Email: "", Password: "pw", Name: "A"},
		"blank email":    {Email: "   ", Password: "pw", Name: "A"},
		"empty password": {Email: "a@x.com", Password: "", Name: "A"},
		"empty name":     {Email: "a@x.com", Password: "pw", Name: ""},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newAuthServiceWithMocks(t)

			_, err := svc.Signup(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSignup_DuplicateEmail_NoToken(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("pw").Return("$2a$hash", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	got, err := svc.Signup(ctx, models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, got.Token)
}

func TestSignup_HashInputError(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrCredentialTooLong)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, crypto.ErrCredentialTooLong)
}

func TestSignup_HashFailure(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	hashErr := errors.New("pool stopped")

	m.hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	assert.ErrorIs(t, err, hashErr)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSignup_StorageFailure(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	dbErr := errors.New("connection refused")

	m.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	assert.ErrorIs(t, err, dbErr)
}

func TestSignup_TokenFailure(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 1}, nil)
	m.tokens.EXPECT().Issue(gomock.Any(), models.Claims{UserID: 1}).Return("", ErrTokenCreationFailed)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	ctx := context.Background()
	stored := models.User{ID: 4, Email: "a@x.com", Name: "A", PasswordHash: "$2a$hash"}

	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(stored, nil),
		m.hasher.EXPECT().Verify("pw", "$2a$hash").Return(true, nil),
		m.tokens.EXPECT().Issue(ctx, models.Claims{UserID: 4}).Return("tok", nil),
	)

	got, err := svc.Login(ctx, models.LoginRequest{Email: "A@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.AuthPayload{Token: "tok", User: stored}, got)
}

func TestLogin_EmptyFields(t *testing.T) {
	for name, req := range map[string]models.LoginRequest{
		"empty email":    {Password: "pw"},
		"empty password": {Email: "a@x.com"},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newAuthServiceWithMocks(t)

			_, err := svc.Login(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestLogin_NoSuchUser(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "nouser@x.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nouser@x.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrNoSuchUser)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{ID: 1, PasswordHash: "$2a$hash"}, nil)
	m.hasher.EXPECT().Verify("wrong", "$2a$hash").Return(false, nil)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, got.Token)
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{ID: 1, PasswordHash: "junk"}, nil)
	m.hasher.EXPECT().Verify("pw", "junk").Return(false, crypto.ErrMalformedHash)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, crypto.ErrMalformedHash)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageFailure(t *testing.T) {
	svc, m := newAuthServiceWithMocks(t)
	dbErr := errors.New("timeout")

	m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNoSuchUser)
}
