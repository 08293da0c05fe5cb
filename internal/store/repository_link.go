// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
)

var linkColumns = []string{"id", "description", "url", "posted_by_id", "created_at"}

// linkRepository is the SQL implementation of [LinkRepository] over the
// "links" table.
type linkRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLinkRepository(db *DB, logger *logger.Logger) LinkRepository {
	logger.Debug().Msg("creating link repository")
	return &linkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLink inserts link. An author that does not exist yields
// [ErrNoUserWasFound].
func (r *linkRepository) CreateLink(ctx context.Context, link models.Link) (models.Link, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(link.TableName()).
		Columns("description", "url", "posted_by_id").
		Values(link.Description, link.URL, link.PostedByID).
		Suffix("RETURNING id, description, url, posted_by_id, created_at").
		ToSql()
	if err != nil {
		return models.Link{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.CreateLink").Msg("error inserting link")

		switch r.db.classify(err) {
		case KindForeignKeyViolation:
			return models.Link{}, ErrNoUserWasFound
		default:
			return models.Link{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *linkRepository) ListLinks(ctx context.Context) ([]models.Link, error) {
	return r.list(ctx, r.selectLinks(), "*linkRepository.ListLinks")
}

func (r *linkRepository) ListLinksByUser(ctx context.Context, userID int64) ([]models.Link, error) {
	return r.list(ctx, r.selectLinks().Where(squirrel.Eq{"posted_by_id": userID}), "*linkRepository.ListLinksByUser")
}

func (r *linkRepository) FindLinkByID(ctx context.Context, id int64) (models.Link, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectLinks().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Link{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	link, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Link{}, ErrLinkNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.FindLinkByID").Msg("error selecting link")
		return models.Link{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return link, nil
}

func (r *linkRepository) selectLinks() squirrel.SelectBuilder {
	return r.db.builder.
		Select(linkColumns...).
		From(models.Link{}.TableName()).
		OrderBy("id ASC")
}

func (r *linkRepository) list(ctx context.Context, sb squirrel.SelectBuilder, caller string) ([]models.Link, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error selecting links")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	links := make([]models.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			log.Err(err).Str("func", caller).Msg("error scanning link")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}

func scanLink(row rowScanner) (models.Link, error) {
	var (
		l        models.Link
		postedBy sql.NullInt64
	)
	if err := row.Scan(&l.ID, &l.Description, &l.URL, &postedBy, timestamp{&l.CreatedAt}); err != nil {
		return models.Link{}, err
	}
	if postedBy.Valid {
		id := postedBy.Int64
		l.PostedByID = &id
	}

	return l, nil
}
