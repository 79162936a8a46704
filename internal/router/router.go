// Package router sets up all HTTP routes and middleware chains for the
// Kronika CMS. Public reading and admin management share one route
// tree; admin-only routes are wrapped in a RequireAdmin group.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kronika/internal/handlers"
	"kronika/internal/middleware"
)

// commentBurst bounds anonymous comment submissions per IP.
const (
	commentBurst  = 10
	commentWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(authSecret string, articles *handlers.Articles, categories *handlers.Categories, comments *handlers.Comments) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. Logger runs first so
	// the request id it mints reaches the recoverer's panic log, and so
	// the access log records the 500 the recoverer writes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.MethodOverride)
	r.Use(middleware.LoadCaller(authSecret))

	limiter := middleware.NewRateLimiter(commentBurst, commentWindow)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Articles. The list and detail views are public; the detail view
	// also accepts comment submissions, which are rate limited.
	r.Get("/", articles.List)

	r.Group(func(r chi.Router) {
		r.Use(limiter.LimitPosts)
		r.Get("/{id:[1-9][0-9]*}", articles.Show)
		r.Post("/{id:[1-9][0-9]*}", articles.Show)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/create", articles.New)
		r.Post("/create", articles.Create)
		r.Get("/{id:[1-9][0-9]*}/edit", articles.Edit)
		r.Put("/{id:[1-9][0-9]*}/edit", articles.Update)
		r.Get("/{id:[1-9][0-9]*}/delete", articles.DeleteConfirm)
		r.Delete("/{id:[1-9][0-9]*}/delete", articles.Delete)
	})

	// Categories. The list is public; management is admin only.
	r.Route("/category", func(r chi.Router) {
		r.Get("/", categories.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/create", categories.New)
			r.Post("/create", categories.Create)
			r.Get("/{id:[1-9][0-9]*}/edit", categories.Edit)
			r.Put("/{id:[1-9][0-9]*}/edit", categories.Update)
			r.Get("/{id:[1-9][0-9]*}/delete", categories.DeleteConfirm)
			r.Delete("/{id:[1-9][0-9]*}/delete", categories.Delete)
		})
	})

	// Comments. Moderation list plus delete; creation lives on the
	// article detail route.
	r.Route("/comment", func(r chi.Router) {
		r.Get("/", comments.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/{id:[1-9][0-9]*}/delete", comments.DeleteConfirm)
			r.Delete("/{id:[1-9][0-9]*}/delete", comments.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
