// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStoragesFromDB(newSQLiteDB(t), logger.Nop())

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", Name: "A", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", Name: "A2", PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	bob, err := s.UserRepository.CreateUser(ctx, models.User{Email: "b@x.com", Name: "B", PasswordHash: "h3"})
	require.NoError(t, err)

	found, err := s.UserRepository.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "h1", found.PasswordHash)

	_, err = s.UserRepository.FindUserByID(ctx, 404)
	require.ErrorIs(t, err, ErrNoUserWasFound)

	seeded, err := s.LinkRepository.CreateLink(ctx, models.Link{Description: "epic", URL: "kennan.tech"})
	require.NoError(t, err)
	assert.Nil(t, seeded.PostedByID)

	posted, err := s.LinkRepository.CreateLink(ctx, models.Link{Description: "mine", URL: "a.com", PostedByID: &alice.ID})
	require.NoError(t, err)
	require.NotNil(t, posted.PostedByID)
	assert.Equal(t, alice.ID, *posted.PostedByID)

	ghost := int64(404)
	_, err = s.LinkRepository.CreateLink(ctx, models.Link{Description: "x", URL: "y", PostedByID: &ghost})
	require.ErrorIs(t, err, ErrNoUserWasFound)

	feed, err := s.LinkRepository.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, seeded.ID, feed[0].ID)
	assert.Equal(t, posted.ID, feed[1].ID)

	byAlice, err := s.LinkRepository.ListLinksByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byAlice, 1)
	assert.Equal(t, posted.ID, byAlice[0].ID)

	_, err = s.LinkRepository.FindLinkByID(ctx, 404)
	require.ErrorIs(t, err, ErrLinkNotFound)

	_, err = s.VoteRepository.CreateVote(ctx, models.Vote{LinkID: posted.ID, UserID: bob.ID})
	require.NoError(t, err)
	_, err = s.VoteRepository.CreateVote(ctx, models.Vote{LinkID: posted.ID, UserID: alice.ID})
	require.NoError(t, err)

	_, err = s.VoteRepository.CreateVote(ctx, models.Vote{LinkID: posted.ID, UserID: bob.ID})
	require.ErrorIs(t, err, ErrVoteAlreadyExists)

	_, err = s.VoteRepository.CreateVote(ctx, models.Vote{LinkID: 404, UserID: bob.ID})
	require.ErrorIs(t, err, ErrLinkNotFound)

	voters, err := s.VoteRepository.ListVoters(ctx, posted.ID)
	require.NoError(t, err)
	require.Len(t, voters, 2)
	assert.Equal(t, bob.ID, voters[0].ID)
	assert.Equal(t, alice.ID, voters[1].ID)

	require.NoError(t, s.Close())
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql", DSN: "dsn"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
