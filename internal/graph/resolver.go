// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graph

import (
	"context"

	"github.com/MKhiriev/go-link-board/internal/logger"
	"github.com/MKhiriev/go-link-board/internal/service"
	"github.com/MKhiriev/go-link-board/models"
)

// Resolver is the root resolver serving both Query and Mutation fields.
type Resolver struct {
	auth  service.AuthService
	links service.LinkService

	logger *logger.Logger
}

func (r *Resolver) Feed(ctx context.Context) ([]*linkResolver, error) {
	links, err := r.links.Feed(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return r.linkResolvers(links), nil
}

type postArgs struct {
	Description string
	URL         string
}

func (r *Resolver) Post(ctx context.Context, args postArgs) (*linkResolver, error) {
	link, err := r.links.Post(ctx, models.PostRequest{Description: args.Description, URL: args.URL})
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &linkResolver{link: link, root: r}, nil
}

type signupArgs struct {
	Email    string
	Password string
	Name     string
}

func (r *Resolver) Signup(ctx context.Context, args signupArgs) (*authPayloadResolver, error) {
	payload, err := r.auth.Signup(ctx, models.SignupRequest{Email: args.Email, Password: args.Password, Name: args.Name})
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &authPayloadResolver{payload: payload, root: r}, nil
}

type loginArgs struct {
	Email    string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authPayloadResolver, error) {
	payload, err := r.auth.Login(ctx, models.LoginRequest{Email: args.Email, Password: args.Password})
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &authPayloadResolver{payload: payload, root: r}, nil
}

type voteArgs struct {
	LinkID int32
}

func (r *Resolver) Vote(ctx context.Context, args voteArgs) (*voteResolver, error) {
	vote, err := r.links.Vote(ctx, int64(args.LinkID))
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &voteResolver{vote: vote, root: r}, nil
}

func (r *Resolver) linkResolvers(links []models.Link) []*linkResolver {
	resolvers := make([]*linkResolver, 0, len(links))
	for _, l := range links {
		resolvers = append(resolvers, &linkResolver{link: l, root: r})
	}
	return resolvers
}

func (r *Resolver) userResolvers(users []models.User) []*userResolver {
	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{user: u, root: r})
	}
	return resolvers
}
