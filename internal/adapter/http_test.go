// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-link-board/internal/config"
	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientConfig{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// graphQLServer answers every request with status and body after letting
// inspect look at the decoded request.
func graphQLServer(t *testing.T, status int, body string, inspect func(r *http.Request, req graphQLRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if r.URL.Path == graphQLPath {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		}
		if inspect != nil {
			inspect(r, req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:4000", want: "http://localhost:4000"},
		{raw: "https://board.example.com/", want: "https://board.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Signup / Login ──────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK,
		`{"data":{"signup":{"token":"tok-1","user":{"id":7,"name":"Alice","email":"a@x.com"}}}}`,
		func(r *http.Request, req graphQLRequest) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Equal(t, "Signup", req.OperationName)
			assert.Equal(t, "a@x.com", req.Variables["email"])
			assert.Equal(t, "pw", req.Variables["password"])
			assert.Equal(t, "Alice", req.Variables["name"])
		})

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, models.User{ID: 7, Name: "Alice", Email: "a@x.com"}, got.User)
	assert.Equal(t, "tok-1", a.Token())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK,
		`{"errors":[{"message":"email is already registered","extensions":{"code":"DUPLICATE_EMAIL"}}],"data":null}`, nil)

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, a.Token())
}

func TestLogin_ErrorCodes(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{code: "NO_SUCH_USER", want: ErrNoSuchUser},
		{code: "INVALID_CREDENTIALS", want: ErrInvalidCredentials},
		{code: "BAD_USER_INPUT", want: ErrBadRequest},
		{code: "INTERNAL", want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			srv := graphQLServer(t, http.StatusOK,
				`{"errors":[{"message":"failed","extensions":{"code":"`+tt.code+`"}}],"data":null}`, nil)

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "pw"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK,
		`{"data":{"login":{"token":"tok-2","user":{"id":3,"name":"Bob","email":"b@x.com"}}}}`, nil)

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "b@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.User.ID)
	assert.Equal(t, "tok-2", a.Token())
}

func TestLogin_UnknownErrorCode(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"errors":[{"message":"boom"}]}`, nil)

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "b@x.com", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// ── Post / Feed ─────────────────────────────────────────────────────────────

func TestPost_SendsBearerToken(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK,
		`{"data":{"post":{"id":1,"description":"epic","url":"kennan.tech","createdAt":"2026-10-01T12:00:00Z","postedBy":{"id":7,"name":"Alice","email":"a@x.com"}}}}`,
		func(r *http.Request, req graphQLRequest) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.Equal(t, "epic", req.Variables["description"])
			assert.Equal(t, "kennan.tech", req.Variables["url"])
		})

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok-1 ")
	got, err := a.Post(context.Background(), models.PostRequest{Description: "epic", URL: "kennan.tech"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
	require.NotNil(t, got.PostedByID)
	assert.Equal(t, int64(7), *got.PostedByID)
}

func TestPost_InvalidToken(t *testing.T) {
	srv := graphQLServer(t, http.StatusUnauthorized,
		`{"errors":[{"message":"invalid token","extensions":{"code":"INVALID_TOKEN"}}]}`, nil)

	a := newTestAdapter(t, srv.URL)
	a.SetToken("garbage")
	_, err := a.Post(context.Background(), models.PostRequest{Description: "d", URL: "u"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFeed_Success(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK,
		`{"data":{"feed":[
			{"id":1,"description":"epic","url":"kennan.tech","createdAt":"2026-10-01T12:00:00Z","postedBy":null},
			{"id":2,"description":"go","url":"go.dev","createdAt":"2026-10-02T12:00:00Z","postedBy":{"id":5,"name":"C","email":"c@x.com"}}
		]}}`, nil)

	a := newTestAdapter(t, srv.URL)
	links, err := a.Feed(context.Background())

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Nil(t, links[0].PostedByID)
	require.NotNil(t, links[1].PostedByID)
	assert.Equal(t, int64(5), *links[1].PostedByID)
}

func TestFeed_EmptyData(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":null}`, nil)

	a := newTestAdapter(t, srv.URL)
	_, err := a.Feed(context.Background())

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFeed_BadGatewayWithoutGraphQLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Feed(context.Background())

	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, versionPath, r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestVersion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}
