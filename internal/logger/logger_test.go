// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	require.NotNil(t, NewLogger("level-role"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNew_StandardFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.True(t, strings.HasSuffix(entry["func"].(string), "TestNew_StandardFields"))
}

func TestNewConsoleLogger_NotNil(t *testing.T) {
	l := NewConsoleLogger("seed")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
