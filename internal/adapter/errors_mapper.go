// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// codeErrors maps GraphQL error codes onto adapter errors.
var codeErrors = map[string]error{
	"BAD_USER_INPUT":      ErrBadRequest,
	"DUPLICATE_EMAIL":     ErrDuplicateEmail,
	"NO_SUCH_USER":        ErrNoSuchUser,
	"INVALID_CREDENTIALS": ErrInvalidCredentials,
	"INVALID_TOKEN":       ErrUnauthorized,
	"UNAUTHENTICATED":     ErrUnauthorized,
	"NOT_FOUND":           ErrNotFound,
	"CONFLICT":            ErrConflict,
	"INTERNAL":            ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapGraphQLErrors converts the first error of a GraphQL response.
func mapGraphQLErrors(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]
	code, _ := first.Extensions["code"].(string)
	if mapped, ok := codeErrors[code]; ok {
		return fmt.Errorf("%w: %s", mapped, first.Message)
	}

	return fmt.Errorf("graphql error: %s", first.Message)
}
