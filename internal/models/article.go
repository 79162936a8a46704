// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package models

import "time"

// Article is a published piece of content. Every article belongs to
// exactly one category and owns its comments (removed together with
// the article). CreatedAt is stamped once on first save and never
// changes afterwards.
type Article struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Slug       string    `json:"slug"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Category is populated by list and find queries via a join.
	Category *Category `json:"category,omitempty"`
}

const (
	minArticleTitleLen   = 3
	maxArticleTitleLen   = 255
	minArticleContentLen = 3
)

// Validate checks the article's field constraints. The category
// reference must be set; whether it resolves to an existing category
// is enforced by the store's foreign key and surfaced by the handlers.
func (a *Article) Validate() error {
	v := &ValidationError{}
	checkLength(v, "title", a.Title, minArticleTitleLen, maxArticleTitleLen)
	checkLength(v, "content", a.Content, minArticleContentLen, 0)
	if a.CategoryID <= 0 {
		v.Add("category", "is required")
	}
	return v.orNil()
}
