// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"kronika/internal/slug"
)

// Seed populates the database with initial development data: a few
// categories, articles spread across them, and some visitor comments.
// It is a no-op when categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []string{"News", "Tutorials", "Opinions"}
	categoryIDs := make([]int64, 0, len(categories))
	for _, name := range categories {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id
		`, name, slug.Generate(name)).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category: %w", err)
		}
		categoryIDs = append(categoryIDs, id)
	}

	articleIDs := make([]int64, 0, 10)
	for i := 1; i <= 10; i++ {
		title := fmt.Sprintf("Sample article %d", i)
		createdAt := time.Now().Add(-time.Duration(i) * 24 * time.Hour)
		var id int64
		err := db.QueryRow(`
			INSERT INTO articles (title, content, slug, category_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, title,
			fmt.Sprintf("Body of sample article %d. Lorem ipsum dolor sit amet.", i),
			slug.Generate(title),
			categoryIDs[i%len(categoryIDs)],
			createdAt,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert article: %w", err)
		}
		articleIDs = append(articleIDs, id)
	}

	for i, articleID := range articleIDs[:5] {
		_, err := db.Exec(`
			INSERT INTO comments (nick, email, content, article_id)
			VALUES ($1, $2, $3, $4)
		`, fmt.Sprintf("visitor%d", i+1),
			fmt.Sprintf("visitor%d@example.com", i+1),
			"Nice read, thanks for sharing.",
			articleID,
		)
		if err != nil {
			return fmt.Errorf("seed insert comment: %w", err)
		}
	}

	slog.Info("database seeded with sample content",
		"categories", len(categoryIDs),
		"articles", len(articleIDs),
	)
	return nil
}
