// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package models

// Comment is a visitor note attached to an article. Anyone may create
// one through the article page; only admins delete them. There is no
// edit operation.
type Comment struct {
	ID        int64  `json:"id"`
	Nick      string `json:"nick"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	ArticleID int64  `json:"article_id"`
}

// The email field is only length-checked, not format-checked.
const (
	minCommentNickLen    = 3
	maxCommentNickLen    = 64
	minCommentEmailLen   = 3
	maxCommentEmailLen   = 64
	minCommentContentLen = 3
)

// Validate checks the comment's field constraints.
func (c *Comment) Validate() error {
	v := &ValidationError{}
	checkLength(v, "nick", c.Nick, minCommentNickLen, maxCommentNickLen)
	checkLength(v, "email", c.Email, minCommentEmailLen, maxCommentEmailLen)
	checkLength(v, "content", c.Content, minCommentContentLen, 0)
	if c.ArticleID <= 0 {
		v.Add("article", "is required")
	}
	return v.orNil()
}
