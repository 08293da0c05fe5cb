// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
)

// voteRepository is the SQL implementation of [VoteRepository] over the
// "votes" table.
type voteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVoteRepository(db *DB, logger *logger.Logger) VoteRepository {
	logger.Debug().Msg("creating vote repository")
	return &voteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVote records a vote.
//
// Error handling:
//   - unique violation on (link_id, user_id) → [ErrVoteAlreadyExists].
//   - foreign key violation → [ErrLinkNotFound].
func (r *voteRepository) CreateVote(ctx context.Context, vote models.Vote) (models.Vote, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(vote.TableName()).
		Columns("link_id", "user_id").
		Values(vote.LinkID, vote.UserID).
		Suffix("RETURNING id, link_id, user_id, created_at").
		ToSql()
	if err != nil {
		return models.Vote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Vote
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.LinkID, &created.UserID, timestamp{&created.CreatedAt})
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CreateVote").Msg("error inserting vote")

		switch r.db.classify(err) {
		case KindUniqueViolation:
			return models.Vote{}, ErrVoteAlreadyExists
		case KindForeignKeyViolation:
			return models.Vote{}, ErrLinkNotFound
		default:
			return models.Vote{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *voteRepository) ListVoters(ctx context.Context, linkID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("u.id", "u.email", "u.name", "u.password_hash", "u.created_at").
		From("votes v").
		Join("users u ON u.id = v.user_id").
		Where(squirrel.Eq{"v.link_id": linkID}).
		OrderBy("v.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.ListVoters").Msg("error selecting voters")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	voters := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		voters = append(voters, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return voters, nil
}
