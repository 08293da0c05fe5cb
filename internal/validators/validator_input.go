// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-link-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"
	FieldURL         = "url"
)

const (
	// maxPasswordLen is the longest password bcrypt can hash.
	maxPasswordLen = 72
	maxTextLen     = 2048
)

type InputValidator struct{}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.PostRequest:
		return v.validatePost(value, fields...)
	case *models.PostRequest:
		return v.validatePost(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		case FieldName:
			err = validateText(req.Name, ErrEmptyName)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *InputValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validatePost(req models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDescription:
			err = validateText(req.Description, ErrEmptyDescription)
		case FieldURL:
			err = validateText(req.URL, ErrEmptyURL)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxTextLen {
		return ErrFieldTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrMalformedEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordLen {
		return ErrPasswordTooLong
	}

	return nil
}

func validateText(s string, errEmpty error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if len(s) > maxTextLen {
		return ErrFieldTooLong
	}

	return nil
}
