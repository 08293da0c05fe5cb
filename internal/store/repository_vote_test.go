// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVoteRepo(t *testing.T) (VoteRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewVoteRepository(db, logger.Nop()), mock
}

func TestCreateVote(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrVoteAlreadyExists},
		{name: "unknown link", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrLinkNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestVoteRepo(t)

			exp := mock.ExpectQuery("INSERT INTO votes").WithArgs(int64(1), int64(2))
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"id", "link_id", "user_id", "created_at"}).
					AddRow(10, 1, 2, time.Now()))
			}

			vote, err := repo.CreateVote(context.Background(), models.Vote{LinkID: 1, UserID: 2})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), vote.ID)
			assert.Equal(t, int64(1), vote.LinkID)
			assert.Equal(t, int64(2), vote.UserID)
		})
	}
}

func TestListVoters(t *testing.T) {
	repo, mock := newTestVoteRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(2, "b@x.com", "B", "hash", time.Now()).
		AddRow(3, "c@x.com", "C", "hash", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM votes v JOIN users u ON u.id = v.user_id WHERE v.link_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	voters, err := repo.ListVoters(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, voters, 2)
	assert.Equal(t, "b@x.com", voters[0].Email)
	assert.Equal(t, int64(3), voters[1].ID)
}
