// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.HasVersion())
}

func TestAppBuildInfo_EmptyValuesAreNotAvailable(t *testing.T) {
	for name, info := range map[string]AppBuildInfo{
		"constructor": NewAppBuildInfo("", "", ""),
		"zero value":  {},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "N/A", info.BuildVersion())
			assert.Equal(t, "N/A", info.BuildDate())
			assert.Equal(t, "N/A", info.BuildCommit())
			assert.False(t, info.HasVersion())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "deadbeef")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: deadbeef", info.String())
}

func TestIdentity(t *testing.T) {
	anon := Anonymous()
	id, ok := anon.UserID()
	assert.False(t, ok)
	assert.Zero(t, id)
	assert.True(t, anon.IsAnonymous())
	assert.Equal(t, anon, Identity{})

	auth := Authenticated(42)
	id, ok = auth.UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.False(t, auth.IsAnonymous())
}
