// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. The tests live in the external test package so the
// harness can wire the real router on top of the handlers. Tests are
// skipped when PostgreSQL or Valkey are unavailable.
package handlers_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"kronika/internal/auth"
	"kronika/internal/database"
	"kronika/internal/flash"
	"kronika/internal/handlers"
	"kronika/internal/models"
	"kronika/internal/render"
	"kronika/internal/router"
	"kronika/internal/service"
	"kronika/internal/store"
)

const testSecret = "handler-test-secret"

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

// testValkeyClient returns a client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "flash:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds the full handler stack wired over real backends.
type testEnv struct {
	DB     *sql.DB
	Router chi.Router
}

// newTestEnv creates a complete test environment, with the router
// carrying the real middleware chain.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	flashes := flash.NewStore(vk)
	renderer, err := render.New(flashes)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	categoryStore := store.NewCategoryStore(db)
	articleStore := store.NewArticleStore(db)
	commentStore := store.NewCommentStore(db)

	categoryService := service.NewCategoryService(categoryStore, articleStore)
	articleService := service.NewArticleService(articleStore, categoryService)
	commentService := service.NewCommentService(commentStore)

	articles := handlers.NewArticles(renderer, flashes, articleService, commentService, categoryService)
	categories := handlers.NewCategories(renderer, flashes, categoryService)
	comments := handlers.NewComments(renderer, flashes, commentService)

	return &testEnv{
		DB:     db,
		Router: router.New(testSecret, articles, categories, comments),
	}
}

// adminCookie mints a cookie holding a fresh admin token.
func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := auth.NewToken(testSecret, "ops@example.com", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

// uniqueName returns a name that cannot collide with leftover rows in a
// shared test database.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// makeCategory inserts a category and registers its removal.
func makeCategory(t *testing.T, db *sql.DB, name string) *models.Category {
	t.Helper()

	c := &models.Category{Name: name, Slug: name}
	err := db.QueryRow(`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug).Scan(&c.ID)
	if err != nil {
		t.Fatalf("insert category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}

// makeArticle inserts an article and registers its removal.
func makeArticle(t *testing.T, db *sql.DB, title string, categoryID int64) *models.Article {
	t.Helper()

	a := &models.Article{
		Title:      title,
		Content:    "Body of " + title,
		Slug:       title,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
	}
	err := db.QueryRow(`
		INSERT INTO articles (title, content, slug, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.Title, a.Content, a.Slug, a.CategoryID, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		t.Fatalf("insert article: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM articles WHERE id = $1", a.ID)
	})
	return a
}

// countRows counts table rows matching a single-argument condition.
func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count query: %v", err)
	}
	return n
}

// get performs a GET through the full router.
func (env *testEnv) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	env.Router.ServeHTTP(rr, req)
	return rr
}

// postForm performs an urlencoded POST through the full router.
func (env *testEnv) postForm(t *testing.T, target string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	env.Router.ServeHTTP(rr, req)
	return rr
}
