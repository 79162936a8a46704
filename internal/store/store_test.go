// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// store_test.go provides shared test infrastructure for the store
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package store

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"kronika/internal/database"
	"kronika/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "kronika")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "kronika")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// makeCategory inserts a category and registers its removal.
func makeCategory(t *testing.T, db *sql.DB, name string) *models.Category {
	t.Helper()

	c := &models.Category{Name: name, Slug: name + "-slug"}
	if err := NewCategoryStore(db).Create(c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}

// makeArticle inserts an article and registers its removal.
func makeArticle(t *testing.T, db *sql.DB, title string, categoryID int64, createdAt time.Time) *models.Article {
	t.Helper()

	a := &models.Article{
		Title:      title,
		Content:    "Body of " + title,
		Slug:       title + "-slug",
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	if err := NewArticleStore(db).Create(a); err != nil {
		t.Fatalf("create article: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM articles WHERE id = $1", a.ID)
	})
	return a
}

// makeComment inserts a comment; removal rides the article cascade.
func makeComment(t *testing.T, db *sql.DB, articleID int64, nick string) *models.Comment {
	t.Helper()

	c := &models.Comment{
		Nick:      nick,
		Email:     nick + "@example.com",
		Content:   "Comment by " + nick,
		ArticleID: articleID,
	}
	if err := NewCommentStore(db).Create(c); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return c
}
