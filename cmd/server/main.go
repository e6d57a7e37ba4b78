// Package main implements the entry point for the learnlog API server,
// a record-keeping backend for learning-session entries with aggregate
// statistics.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/learnlog/learnlog-api/internal/config"
	"github.com/learnlog/learnlog-api/internal/platform/logger"
)

func main() {
	// Load configuration. A missing database URL is fatal: the process has
	// nothing to serve without a store.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging using the configured log level.
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Open the database connection; logged outcome, no reconnection policy.
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Bring the schema up to date before serving.
	if err := runMigrations(db, appLogger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := newApplication(cfg, appLogger, db)
	router := app.setupRouter()

	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
