// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/utils"
	"github.com/MKhiriev/go-link-board/internal/validators"
	"github.com/MKhiriev/go-link-board/models"
)

// LinkValidationService checks posted links before they reach the wrapped
// LinkService. Every other operation is passed through untouched.
type LinkValidationService struct {
	LinkService
	validator validators.Validator
}

func NewLinkValidationService() LinkServiceWrapper {
	return &LinkValidationService{
		validator: validators.NewInputValidator(),
	}
}

// Post reports a missing login ahead of bad input.
func (v *LinkValidationService) Post(ctx context.Context, req models.PostRequest) (models.Link, error) {
	if utils.IdentityFromContext(ctx).IsAnonymous() {
		return models.Link{}, errPostAnonymous
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Link{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.LinkService.Post(ctx, req)
}

func (v *LinkValidationService) Vote(ctx context.Context, linkID int64) (models.Vote, error) {
	if linkID <= 0 {
		return models.Vote{}, ErrLinkNotFound
	}

	return v.LinkService.Vote(ctx, linkID)
}

func (v *LinkValidationService) Wrap(wrapped LinkService) LinkService {
	v.LinkService = wrapped
	return v
}
