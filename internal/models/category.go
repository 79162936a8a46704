// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package models

// Category groups articles under a unique display name. The slug is
// derived from the name on every save; the name is unique across all
// categories.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`

	// ArticleCount is populated by list queries for display purposes.
	ArticleCount int `json:"article_count"`
}

const (
	minCategoryNameLen = 3
	maxCategoryNameLen = 64
)

// Validate checks the category's field constraints.
func (c *Category) Validate() error {
	v := &ValidationError{}
	checkLength(v, "name", c.Name, minCategoryNameLen, maxCategoryNameLen)
	return v.orNil()
}
