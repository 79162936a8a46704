// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package service

import (
	"time"

	"kronika/internal/models"
	"kronika/internal/pagination"
	"kronika/internal/slug"
	"kronika/internal/store"
)

// maxArticleSlugLen mirrors the title column limit.
const maxArticleSlugLen = 255

// ArticleFilters carries the raw list filters taken from query
// parameters before resolution.
type ArticleFilters struct {
	CategoryID int64
}

// ResolvedFilters is the outcome of PrepareFilters: a nil Category
// means no restriction.
type ResolvedFilters struct {
	Category *models.Category
}

// ArticleService implements article business rules.
type ArticleService struct {
	articles   *store.ArticleStore
	categories *CategoryService
}

// NewArticleService returns an ArticleService backed by the given
// store and category service.
func NewArticleService(articles *store.ArticleStore, categories *CategoryService) *ArticleService {
	return &ArticleService{articles: articles, categories: categories}
}

// List returns one page of articles ordered by creation time
// descending, restricted to a category when the raw filter resolves.
func (s *ArticleService) List(page int, filters ArticleFilters) (pagination.Page[models.Article], error) {
	resolved, err := s.PrepareFilters(filters)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}

	var categoryID int64
	if resolved.Category != nil {
		categoryID = resolved.Category.ID
	}

	items, total, err := s.articles.ListPage(categoryID, pagination.Offset(page), pagination.PageSize)
	if err != nil {
		return pagination.Page[models.Article]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

// FindOneByID looks up an article directly. Returns nil when absent.
func (s *ArticleService) FindOneByID(id int64) (*models.Article, error) {
	return s.articles.FindByID(id)
}

// Save validates the article, derives its slug from the title, stamps
// CreatedAt on first save, and inserts or updates depending on whether
// an ID is already assigned. CreatedAt is never altered after the
// first save.
func (s *ArticleService) Save(a *models.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.Slug = slug.GenerateMax(a.Title, maxArticleSlugLen)

	if a.ID == 0 {
		a.CreatedAt = time.Now()
		return s.articles.Create(a)
	}
	return s.articles.Update(a)
}

// Delete removes the article unconditionally; its comments cascade.
func (s *ArticleService) Delete(a *models.Article) error {
	return s.articles.Delete(a.ID)
}

// PrepareFilters resolves a raw category id into a Category via the
// category service. An absent or unresolvable id yields no restriction
// rather than an error.
func (s *ArticleService) PrepareFilters(filters ArticleFilters) (ResolvedFilters, error) {
	var resolved ResolvedFilters
	if filters.CategoryID == 0 {
		return resolved, nil
	}

	category, err := s.categories.FindOneByID(filters.CategoryID)
	if err != nil {
		return resolved, err
	}
	if category != nil {
		resolved.Category = category
	}
	return resolved, nil
}
