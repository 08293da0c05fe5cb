// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/jackc/pgerrcode"
)

var userRowColumns = []string{"id", "email", "name", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{Email: "a@x.com", Name: "A", PasswordHash: "hash"}
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).AddRow(1, user.Email, user.Name, user.PasswordHash, now)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, created.CreatedAt)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(rows)

	if _, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"}); err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow(1, "a@x.com", "A", "hash", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 1 || found.PasswordHash != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nouser@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nouser@x.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow(7, "b@x.com", "B", "hash", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	found, err := repo.FindUserByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "b@x.com" {
		t.Errorf("expected email b@x.com, got %s", found.Email)
	}

	if _, err := repo.FindUserByID(context.Background(), 8); !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
