// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/store"
	"github.com/MKhiriev/go-link-board/internal/utils"
	"github.com/MKhiriev/go-link-board/models"
)

type linkService struct {
	links store.LinkRepository
	votes store.VoteRepository
	users store.UserRepository

	logger *logger.Logger
}

func NewLinkService(links store.LinkRepository, votes store.VoteRepository, users store.UserRepository, logger *logger.Logger) LinkService {
	return &linkService{
		links:  links,
		votes:  votes,
		users:  users,
		logger: logger,
	}
}

func (s *linkService) Feed(ctx context.Context) ([]models.Link, error) {
	links, err := s.links.ListLinks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing links failed")
		return nil, fmt.Errorf("listing links failed: %w", err)
	}

	return links, nil
}

// Post stores a new link on behalf of the signed in user.
// Anonymous callers get [ErrNotAuthenticated] before the input is looked at.
func (s *linkService) Post(ctx context.Context, req models.PostRequest) (models.Link, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.IdentityFromContext(ctx).UserID()
	if !ok {
		return models.Link{}, errPostAnonymous
	}

	description := strings.TrimSpace(req.Description)
	url := strings.TrimSpace(req.URL)
	if description == "" || url == "" {
		return models.Link{}, ErrInvalidDataProvided
	}

	link, err := s.links.CreateLink(ctx, models.Link{
		Description: description,
		URL:         url,
		PostedByID:  &userID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("link creation failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			// the token outlived its account
			return models.Link{}, ErrNotAuthenticated
		}
		return models.Link{}, fmt.Errorf("link creation failed: %w", err)
	}

	log.Info().Int64("link_id", link.ID).Int64("user_id", userID).Msg("link posted")
	return link, nil
}

func (s *linkService) Vote(ctx context.Context, linkID int64) (models.Vote, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.IdentityFromContext(ctx).UserID()
	if !ok {
		return models.Vote{}, ErrNotAuthenticated
	}

	if _, err := s.Link(ctx, linkID); err != nil {
		return models.Vote{}, err
	}

	vote, err := s.votes.CreateVote(ctx, models.Vote{LinkID: linkID, UserID: userID})
	if err != nil {
		log.Err(err).Int64("link_id", linkID).Int64("user_id", userID).Msg("vote creation failed")
		switch {
		case errors.Is(err, store.ErrVoteAlreadyExists):
			return models.Vote{}, ErrAlreadyVoted
		case errors.Is(err, store.ErrLinkNotFound):
			return models.Vote{}, ErrLinkNotFound
		}
		return models.Vote{}, fmt.Errorf("vote creation failed: %w", err)
	}

	return vote, nil
}

func (s *linkService) PostedBy(ctx context.Context, link models.Link) (*models.User, error) {
	if link.PostedByID == nil {
		return nil, nil
	}

	user, err := s.users.FindUserByID(ctx, *link.PostedByID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("link_id", link.ID).Msg("author lookup failed")
		return nil, fmt.Errorf("author lookup failed: %w", err)
	}

	return &user, nil
}

func (s *linkService) Voters(ctx context.Context, linkID int64) ([]models.User, error) {
	voters, err := s.votes.ListVoters(ctx, linkID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("link_id", linkID).Msg("listing voters failed")
		return nil, fmt.Errorf("listing voters failed: %w", err)
	}

	return voters, nil
}

func (s *linkService) LinksByUser(ctx context.Context, userID int64) ([]models.Link, error) {
	links, err := s.links.ListLinksByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing user links failed")
		return nil, fmt.Errorf("listing user links failed: %w", err)
	}

	return links, nil
}

func (s *linkService) User(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrNoSuchUser
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (s *linkService) Link(ctx context.Context, linkID int64) (models.Link, error) {
	link, err := s.links.FindLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return models.Link{}, ErrLinkNotFound
		}
		return models.Link{}, fmt.Errorf("link lookup failed: %w", err)
	}

	return link, nil
}
