// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"kronika/internal/models"
)

// ArticleStore manages articles in the database. List queries join the
// owning category so views never need a second lookup.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// scanArticle scans an article row joined with its category.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	var c models.Category
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Content, &a.Slug, &a.CategoryID, &a.CreatedAt,
		&c.ID, &c.Name, &c.Slug,
	)
	if err != nil {
		return nil, err
	}
	a.Category = &c
	return &a, nil
}

const articleSelect = `
	SELECT a.id, a.title, a.content, a.slug, a.category_id, a.created_at,
	       c.id, c.name, c.slug
	FROM articles a
	JOIN categories c ON c.id = a.category_id`

// ListPage returns one page of articles ordered by creation time
// descending, plus the total count. When categoryID is non-zero the
// list and count are restricted to that category.
func (s *ArticleStore) ListPage(categoryID int64, offset, limit int) ([]models.Article, int, error) {
	query := articleSelect
	countQuery := `SELECT COUNT(*) FROM articles a`
	args := []any{offset, limit}
	countArgs := []any{}

	if categoryID != 0 {
		query += `
	WHERE a.category_id = $3`
		countQuery += ` WHERE a.category_id = $1`
		args = append(args, categoryID)
		countArgs = append(countArgs, categoryID)
	}
	query += `
	ORDER BY a.created_at DESC, a.id DESC
	OFFSET $1 LIMIT $2`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	var total int
	if err := s.db.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}
	return items, total, nil
}

// FindByID retrieves an article with its category. Returns nil if not
// found.
func (s *ArticleStore) FindByID(id int64) (*models.Article, error) {
	row := s.db.QueryRow(articleSelect+` WHERE a.id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// Create inserts a new article and fills in the generated ID.
func (s *ArticleStore) Create(a *models.Article) error {
	err := s.db.QueryRow(`
		INSERT INTO articles (title, content, slug, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, a.Title, a.Content, a.Slug, a.CategoryID, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Update modifies an existing article. created_at is deliberately not
// part of the statement — it is immutable after first save.
func (s *ArticleStore) Update(a *models.Article) error {
	_, err := s.db.Exec(`
		UPDATE articles SET title = $1, content = $2, slug = $3, category_id = $4
		WHERE id = $5
	`, a.Title, a.Content, a.Slug, a.CategoryID, a.ID)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID. Its comments go with it via the
// ON DELETE CASCADE constraint.
func (s *ArticleStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// CountByCategory returns the number of articles referencing the given
// category. Category deletion is allowed only when this is zero.
func (s *ArticleStore) CountByCategory(categoryID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(DISTINCT id) FROM articles WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles by category: %w", err)
	}
	return count, nil
}
