// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the literal prefix stripped from Authorization headers.
const BearerPrefix = "Bearer "

var (
	ErrEmptySignKey     = errors.New("empty JWT sign key")
	ErrInvalidUserID    = errors.New("token carries no valid userId claim")
	ErrEmptyBearerToken = errors.New("empty bearer token")
)

// UserClaims is the JWT payload issued to users. The user id travels in the
// "userId" claim; the registered claims are filled only when configured.
type UserClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// JWTParams holds the optional registered claims of issued tokens.
//
// An empty Issuer omits "iss" on issue and skips the issuer check on
// validation. A zero Duration omits "exp"; a token that does carry "exp" is
// still rejected once expired.
type JWTParams struct {
	Issuer   string
	Duration time.Duration
}

// GenerateJWTToken creates an HMAC-SHA256 JWT for userID.
//
// The token always carries "userId" and "iat". "iss" and "exp" are added from
// params when set.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, utils.JWTParams{Duration: time.Hour}, "secret")
func GenerateJWTToken(userID int64, params JWTParams, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}
	if userID <= 0 {
		return "", ErrInvalidUserID
	}

	now := time.Now()
	claims := &UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   params.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if params.Duration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(params.Duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns the user id it
// was issued for.
//
// Validation covers the HS256 signature, the structure, the issuer (when
// params.Issuer is set), expiry (when "exp" is present, and mandatory when
// params.Duration is set) and the presence of a positive "userId".
func ValidateAndParseJWTToken(tokenString, signKey string, params JWTParams) (int64, error) {
	if signKey == "" {
		return 0, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}
	if params.Duration > 0 {
		opts = append(opts, jwt.WithExpirationRequired())
	}

	claims := &UserClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return 0, ErrInvalidUserID
	}

	return claims.UserID, nil
}

// ParseBearerToken strips [BearerPrefix] from an Authorization header value
// when present and returns the remaining token. A header without the prefix
// is returned as is.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, BearerPrefix))
	if token == "" {
		return "", ErrEmptyBearerToken
	}
	return token, nil
}
