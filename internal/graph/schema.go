// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package graph exposes the link board over GraphQL. The schema lives in
// schema.graphql and is bound to the resolvers of this package with
// graph-gophers/graphql-go.
package graph

import (
	_ "embed"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaString string

// maxQueryDepth bounds nested selections such as link.voters.links.voters.
const maxQueryDepth = 10

// NewSchema parses the embedded schema and binds it to resolvers backed by
// the given services. It panics if the schema and resolvers disagree.
func NewSchema(auth service.AuthService, links service.LinkService, logger *logger.Logger) *graphql.Schema {
	return graphql.MustParseSchema(schemaString,
		&Resolver{auth: auth, links: links, logger: logger},
		graphql.MaxDepth(maxQueryDepth),
	)
}
