// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graph

import (
	"context"

	"github.com/MKhiriev/go-link-board/models"
)

// Returned after signup or login; the token goes into the Authorization header.
type authPayloadResolver struct {
	payload models.AuthPayload
	root    *Resolver
}

func (a *authPayloadResolver) Token() string { return a.payload.Token }
func (a *authPayloadResolver) User() *userResolver {
	return &userResolver{user: a.payload.User, root: a.root}
}

type userResolver struct {
	user models.User
	root *Resolver
}

func (u *userResolver) ID() int32     { return int32(u.user.ID) }
func (u *userResolver) Name() string  { return u.user.Name }
func (u *userResolver) Email() string { return u.user.Email }

func (u *userResolver) Links(ctx context.Context) ([]*linkResolver, error) {
	links, err := u.root.links.LinksByUser(ctx, u.user.ID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return u.root.linkResolvers(links), nil
}

type linkResolver struct {
	link models.Link
	root *Resolver
}

func (l *linkResolver) ID() int32           { return int32(l.link.ID) }
func (l *linkResolver) Description() string { return l.link.Description }
func (l *linkResolver) URL() string         { return l.link.URL }
func (l *linkResolver) CreatedAt() DateTime { return DateTime{l.link.CreatedAt} }

func (l *linkResolver) PostedBy(ctx context.Context) (*userResolver, error) {
	user, err := l.root.links.PostedBy(ctx, l.link)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	if user == nil {
		return nil, nil
	}

	return &userResolver{user: *user, root: l.root}, nil
}

func (l *linkResolver) Voters(ctx context.Context) ([]*userResolver, error) {
	voters, err := l.root.links.Voters(ctx, l.link.ID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return l.root.userResolvers(voters), nil
}

type voteResolver struct {
	vote models.Vote
	root *Resolver
}

func (v *voteResolver) ID() int32 { return int32(v.vote.ID) }

func (v *voteResolver) Link(ctx context.Context) (*linkResolver, error) {
	link, err := v.root.links.Link(ctx, v.vote.LinkID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &linkResolver{link: link, root: v.root}, nil
}

func (v *voteResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := v.root.links.User(ctx, v.vote.UserID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}

	return &userResolver{user: user, root: v.root}, nil
}
