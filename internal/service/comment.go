// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package service

import (
	"kronika/internal/models"
	"kronika/internal/pagination"
	"kronika/internal/store"
)

// CommentService implements comment business rules. Beyond entity
// validation there are none — comments are created by visitors and
// deleted by admins, with no edit operation.
type CommentService struct {
	comments *store.CommentStore
}

// NewCommentService returns a CommentService backed by the given store.
func NewCommentService(comments *store.CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

// List returns one page of all comments ordered by id ascending. This
// backs the moderation view.
func (s *CommentService) List(page int) (pagination.Page[models.Comment], error) {
	items, total, err := s.comments.ListPage(pagination.Offset(page), pagination.PageSize)
	if err != nil {
		return pagination.Page[models.Comment]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

// ForArticle returns all comments attached to the given article.
func (s *CommentService) ForArticle(a *models.Article) ([]models.Comment, error) {
	return s.comments.ListByArticle(a.ID)
}

// FindOneByID looks up a comment directly. Returns nil when absent.
func (s *CommentService) FindOneByID(id int64) (*models.Comment, error) {
	return s.comments.FindByID(id)
}

// Save validates and persists a new comment.
func (s *CommentService) Save(c *models.Comment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.comments.Create(c)
}

// Delete removes the comment unconditionally.
func (s *CommentService) Delete(c *models.Comment) error {
	return s.comments.Delete(c.ID)
}
