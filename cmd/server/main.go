// Package main implements the entry point for the Taskdeck API server,
// a multi-tenant task-tracking backend with bearer-token authentication.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/calverly/taskdeck-api/internal/api"
	"github.com/calverly/taskdeck-api/internal/api/middleware"
	"github.com/calverly/taskdeck-api/internal/config"
	"github.com/calverly/taskdeck-api/internal/platform/logger"
	"github.com/calverly/taskdeck-api/internal/platform/postgres"
	"github.com/calverly/taskdeck-api/internal/service"
	"github.com/calverly/taskdeck-api/internal/service/auth"
	"github.com/calverly/taskdeck-api/internal/store"
	"github.com/calverly/taskdeck-api/migrations"
)

func main() {
	srv, cleanup, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// initializeApp loads configuration and wires up all application components.
// Returns the configured HTTP server, a cleanup function, and any
// initialization error.
func initializeApp() (*http.Server, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	cleanup := func() { _ = db.Close() }

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	tagStore := postgres.NewPostgresTagStore(db, appLogger)
	taskStore := postgres.NewPostgresTaskStore(db, tagStore, appLogger)

	taskService := service.NewTaskService(store.NewSQLTxRunner(db), taskStore, tagStore, appLogger)
	tagService := service.NewTagService(tagStore, appLogger)

	authHandler := api.NewAuthHandler(userStore, jwtService, passwordHasher)
	taskHandler := api.NewTaskHandler(taskService, appLogger)
	tagHandler := api.NewTagHandler(tagService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userStore)

	router := api.NewRouter(authHandler, taskHandler, tagHandler, authMiddleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return srv, cleanup, nil
}

// runMigrations brings the schema up to date using the embedded goose
// migrations.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
