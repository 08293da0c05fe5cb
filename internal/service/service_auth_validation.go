// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-board/internal/validators"
	"github.com/MKhiriev/go-link-board/models"
)

// AuthValidationService rejects malformed signup and login input before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthPayload, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, req)
}

// Login only requires both fields to be present: an address that could
// never have been registered fails as an unknown user.
func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
