// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package service implements the business rules sitting between the
// HTTP handlers and the SQL stores: slug derivation on save, creation
// timestamps, filter resolution and the category deletability guard.
package service

import (
	"errors"

	"kronika/internal/models"
	"kronika/internal/pagination"
	"kronika/internal/slug"
	"kronika/internal/store"
)

// ErrCategoryInUse is returned by CategoryService.Delete when articles
// still reference the category. Handlers recover from it with a notice
// instead of an error page.
var ErrCategoryInUse = errors.New("category has articles and cannot be deleted")

// maxCategorySlugLen mirrors the name column limit.
const maxCategorySlugLen = 64

// CategoryService implements category business rules.
type CategoryService struct {
	categories *store.CategoryStore
	articles   *store.ArticleStore
}

// NewCategoryService returns a CategoryService backed by the given stores.
func NewCategoryService(categories *store.CategoryStore, articles *store.ArticleStore) *CategoryService {
	return &CategoryService{categories: categories, articles: articles}
}

// List returns one page of all categories ordered by id ascending.
func (s *CategoryService) List(page int) (pagination.Page[models.Category], error) {
	items, total, err := s.categories.ListPage(pagination.Offset(page), pagination.PageSize)
	if err != nil {
		return pagination.Page[models.Category]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

// All returns every category ordered by name, for form selects.
func (s *CategoryService) All() ([]models.Category, error) {
	return s.categories.ListAll()
}

// FindOneByID looks up a category directly. Returns nil when absent.
func (s *CategoryService) FindOneByID(id int64) (*models.Category, error) {
	return s.categories.FindByID(id)
}

// Save validates the category, derives its slug from the name, and
// inserts or updates depending on whether an ID is already assigned.
// A name held by another category is a validation failure.
func (s *CategoryService) Save(c *models.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	existing, err := s.categories.FindByName(c.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		v := &models.ValidationError{}
		v.Add("name", "is already taken")
		return v
	}

	c.Slug = slug.GenerateMax(c.Name, maxCategorySlugLen)

	if c.ID == 0 {
		return s.categories.Create(c)
	}
	return s.categories.Update(c)
}

// Delete removes the category, refusing with ErrCategoryInUse while
// any article references it.
func (s *CategoryService) Delete(c *models.Category) error {
	if !s.CanBeDeleted(c) {
		return ErrCategoryInUse
	}
	return s.categories.Delete(c.ID)
}

// CanBeDeleted reports whether no articles reference the category.
// An unanswered count — no rows, an ambiguous aggregate, a failed
// query — never allows deletion.
func (s *CategoryService) CanBeDeleted(c *models.Category) bool {
	count, err := s.articles.CountByCategory(c.ID)
	if err != nil {
		return false
	}
	return count == 0
}
