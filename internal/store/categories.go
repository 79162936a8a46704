// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package store contains the per-entity SQL persistence layer. Queries
// are explicit — no ORM metadata on the models.
package store

import (
	"database/sql"
	"fmt"

	"kronika/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := scanner.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPage returns one page of categories ordered by id ascending,
// with per-category article counts, plus the total category count.
func (s *CategoryStore) ListPage(offset, limit int) ([]models.Category, int, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, COUNT(a.id) AS article_count
		FROM categories c
		LEFT JOIN articles a ON a.category_id = c.id
		GROUP BY c.id
		ORDER BY c.id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ArticleCount); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	return items, total, nil
}

// ListAll returns every category ordered by name. Backs the category
// select on the article form.
func (s *CategoryStore) ListAll() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list all categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id int64) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindByName retrieves a category by its exact name. Returns nil if
// not found. Used to enforce name uniqueness before saving.
func (s *CategoryStore) FindByName(name string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// Create inserts a new category and fills in the generated ID.
func (s *CategoryStore) Create(c *models.Category) error {
	err := s.db.QueryRow(`
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id
	`, c.Name, c.Slug).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET name = $1, slug = $2 WHERE id = $3
	`, c.Name, c.Slug, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Callers must check deletability
// first; the schema's RESTRICT constraint is only a backstop.
func (s *CategoryStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
