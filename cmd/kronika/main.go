// Package main is the entry point for the Kronika CMS server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kronika/internal/config"
	"kronika/internal/database"
	"kronika/internal/flash"
	"kronika/internal/handlers"
	"kronika/internal/render"
	"kronika/internal/router"
	"kronika/internal/service"
	"kronika/internal/store"
	"kronika/internal/valkey"
)

func main() {
	// Structured logger — outputs text; level is generous in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey, the flash notice channel.
	valkeyClient, err := valkey.Connect(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	flashes := flash.NewStore(valkeyClient)

	// Initialize the HTML template renderer.
	renderer, err := render.New(flashes)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	categoryStore := store.NewCategoryStore(db)
	articleStore := store.NewArticleStore(db)
	commentStore := store.NewCommentStore(db)

	// Wire business services over the stores.
	categoryService := service.NewCategoryService(categoryStore, articleStore)
	articleService := service.NewArticleService(articleStore, categoryService)
	commentService := service.NewCommentService(commentStore)

	// Create handler groups with their dependencies.
	articleHandlers := handlers.NewArticles(renderer, flashes, articleService, commentService, categoryService)
	categoryHandlers := handlers.NewCategories(renderer, flashes, categoryService)
	commentHandlers := handlers.NewComments(renderer, flashes, commentService)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg.AuthSecret, articleHandlers, categoryHandlers, commentHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
