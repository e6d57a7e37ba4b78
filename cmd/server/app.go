package main

import (
	"database/sql"
	"log/slog"

	"github.com/learnlog/learnlog-api/internal/config"
	"github.com/learnlog/learnlog-api/internal/platform/postgres"
	"github.com/learnlog/learnlog-api/internal/store"
)

// application holds the process-wide dependencies. The store connection is
// an explicit dependency injected into the route layer, never an ambient
// global, so tests can substitute doubles and shutdown can close it.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB
	entryStore store.EntryStore
}

// newApplication wires the application dependencies around an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		entryStore: postgres.NewPostgresEntryStore(db, logger),
	}
}

// cleanup releases process-wide resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
			return
		}
		app.logger.Info("Database connection closed")
	}
}
