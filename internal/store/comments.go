// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"kronika/internal/models"
)

// CommentStore manages comments in the database.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, nick, email, content, article_id`

// scanComment scans a row into a Comment struct.
func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	if err := scanner.Scan(&c.ID, &c.Nick, &c.Email, &c.Content, &c.ArticleID); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPage returns one page of all comments ordered by id ascending,
// plus the total count. This backs the moderation view.
func (s *CommentStore) ListPage(offset, limit int) ([]models.Comment, int, error) {
	rows, err := s.db.Query(`
		SELECT `+commentColumns+` FROM comments
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}
	return items, total, nil
}

// ListByArticle returns all comments attached to the given article,
// ordered by id ascending.
func (s *CommentStore) ListByArticle(articleID int64) ([]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT `+commentColumns+` FROM comments
		WHERE article_id = $1
		ORDER BY id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments by article: %w", err)
	}
	defer rows.Close()

	var items []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a comment by ID. Returns nil if not found.
func (s *CommentStore) FindByID(id int64) (*models.Comment, error) {
	row := s.db.QueryRow(`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

// Create inserts a new comment and fills in the generated ID.
func (s *CommentStore) Create(c *models.Comment) error {
	err := s.db.QueryRow(`
		INSERT INTO comments (nick, email, content, article_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Nick, c.Email, c.Content, c.ArticleID).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// Delete removes a comment by ID.
func (s *CommentStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
