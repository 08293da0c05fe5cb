// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/utils"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/go-resty/resty/v2"
)

const (
	graphQLPath = "/graphql"
	versionPath = "/api/version"
)

const (
	linkFields = `id description url createdAt postedBy { id name email }`
	userFields = `id name email`

	signupMutation = `mutation Signup($email: String!, $password: String!, $name: String!) {
  signup(email: $email, password: $password, name: $name) { token user { ` + userFields + ` } }
}`
	loginMutation = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) { token user { ` + userFields + ` } }
}`
	postMutation = `mutation Post($description: String!, $url: String!) {
  post(description: $description, url: $url) { ` + linkFields + ` }
}`
	feedQuery = `query Feed { feed { ` + linkFields + ` } }`
)

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u userDTO) model() models.User {
	return models.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

type linkDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
	PostedBy    *userDTO  `json:"postedBy"`
}

func (l linkDTO) model() models.Link {
	link := models.Link{
		ID:          l.ID,
		Description: l.Description,
		URL:         l.URL,
		CreatedAt:   l.CreatedAt,
	}
	if l.PostedBy != nil {
		id := l.PostedBy.ID
		link.PostedByID = &id
	}
	return link
}

type authPayloadDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a GraphQL over HTTP implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthPayload, error) {
	var data struct {
		Signup *authPayloadDTO `json:"signup"`
	}

	err := h.do(ctx, graphQLRequest{
		Query:         signupMutation,
		OperationName: "Signup",
		Variables:     map[string]any{"email": req.Email, "password": req.Password, "name": req.Name},
	}, &data)
	if err != nil {
		return models.AuthPayload{}, fmt.Errorf("signup request: %w", err)
	}
	if data.Signup == nil {
		return models.AuthPayload{}, fmt.Errorf("signup request: %w", ErrEmptyResponse)
	}

	h.SetToken(data.Signup.Token)
	return models.AuthPayload{Token: data.Signup.Token, User: data.Signup.User.model()}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthPayload, error) {
	var data struct {
		Login *authPayloadDTO `json:"login"`
	}

	err := h.do(ctx, graphQLRequest{
		Query:         loginMutation,
		OperationName: "Login",
		Variables:     map[string]any{"email": req.Email, "password": req.Password},
	}, &data)
	if err != nil {
		return models.AuthPayload{}, fmt.Errorf("login request: %w", err)
	}
	if data.Login == nil {
		return models.AuthPayload{}, fmt.Errorf("login request: %w", ErrEmptyResponse)
	}

	h.SetToken(data.Login.Token)
	return models.AuthPayload{Token: data.Login.Token, User: data.Login.User.model()}, nil
}

func (h *httpServerAdapter) Post(ctx context.Context, req models.PostRequest) (models.Link, error) {
	var data struct {
		Post *linkDTO `json:"post"`
	}

	err := h.do(ctx, graphQLRequest{
		Query:         postMutation,
		OperationName: "Post",
		Variables:     map[string]any{"description": req.Description, "url": req.URL},
	}, &data)
	if err != nil {
		return models.Link{}, fmt.Errorf("post request: %w", err)
	}
	if data.Post == nil {
		return models.Link{}, fmt.Errorf("post request: %w", ErrEmptyResponse)
	}

	return data.Post.model(), nil
}

func (h *httpServerAdapter) Feed(ctx context.Context) ([]models.Link, error) {
	var data struct {
		Feed []linkDTO `json:"feed"`
	}

	if err := h.do(ctx, graphQLRequest{Query: feedQuery, OperationName: "Feed"}, &data); err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}

	links := make([]models.Link, 0, len(data.Feed))
	for _, l := range data.Feed {
		links = append(links, l.model())
	}
	return links, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// do posts a GraphQL request and decodes its data into result.
// A 401 answered by the identity middleware still carries a GraphQL body, so
// GraphQL errors are looked at before the status code.
func (h *httpServerAdapter) do(ctx context.Context, req graphQLRequest, result any) error {
	var body graphQLResponse

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&body).
		SetError(&body)
	if token := h.Token(); token != "" {
		r.SetHeader("Authorization", utils.BearerPrefix+token)
	}

	resp, err := r.Post(graphQLPath)
	if err != nil {
		return err
	}

	if err = mapGraphQLErrors(body.Errors); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("operation", req.OperationName).Msg("graphql request failed")
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if len(body.Data) == 0 || string(body.Data) == "null" {
		return ErrEmptyResponse
	}
	if err = json.Unmarshal(body.Data, result); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}
