// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

// ClientSeedService fills a running board with starter content through its
// public API.
type ClientSeedService interface {
	// Seed signs in as the seed account, creating it when missing, posts the
	// starter links and returns the resulting feed.
	Seed(ctx context.Context) ([]models.Link, error)
}
