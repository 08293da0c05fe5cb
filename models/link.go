// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Link is a URL shared on the board.
type Link struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`

	// PostedByID is the author of the link. Links created outside the API
	// (for example by the seed command) may have no author.
	PostedByID *int64 `json:"posted_by_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Link model.
func (l Link) TableName() string {
	return "links"
}

// PostRequest carries the fields of a link being posted.
type PostRequest struct {
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Vote records that a user upvoted a link. A user votes for a link at most once.
type Vote struct {
	ID        int64     `json:"id"`
	LinkID    int64     `json:"link_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Vote model.
func (v Vote) TableName() string {
	return "votes"
}
