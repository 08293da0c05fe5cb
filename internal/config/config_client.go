// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-link-board/models"
)

// ClientConfig is the configuration view used by API clients such as the
// seed command. It is assembled from the same sources as [StructuredConfig]
// but validated independently, so a client does not need server secrets.
type ClientConfig struct {
	// HTTPAddress is the base address of the link board API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// SeedAccount is the account the seed command signs up or logs in as.
	SeedAccount models.SignupRequest
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		SeedAccount: models.SignupRequest{
			Email:    cfg.Adapter.SeedEmail,
			Password: cfg.Adapter.SeedPassword,
			Name:     cfg.Adapter.SeedName,
		},
	}

	return clientCfg, clientCfg.validate()
}
