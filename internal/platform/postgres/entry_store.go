package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/learnlog/learnlog-api/internal/domain"
	"github.com/learnlog/learnlog-api/internal/platform/logger"
	"github.com/learnlog/learnlog-api/internal/store"
)

// PostgresEntryStore implements the store.EntryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEntryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEntryStore creates a new PostgreSQL implementation of the
// EntryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresEntryStore(db store.DBTX, log *slog.Logger) *PostgresEntryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresEntryStore{
		db:     db,
		logger: log.With(slog.String("component", "entry_store")),
	}
}

// Ensure PostgresEntryStore implements store.EntryStore interface
var _ store.EntryStore = (*PostgresEntryStore)(nil)

// ListAll implements store.EntryStore.ListAll.
// Entries come back ordered by session date descending; the id is a
// secondary sort key so the full order is deterministic, which pins the
// leaderboard tie-break downstream.
func (s *PostgresEntryStore) ListAll(ctx context.Context) ([]*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, date, hours, notes, created_at, updated_at
		FROM entries
		ORDER BY date DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query entries",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var entries []*domain.Entry
	for rows.Next() {
		var entry domain.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Date,
			&entry.Hours,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan entry row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no entries found
	if entries == nil {
		entries = []*domain.Entry{}
	}

	log.Debug("listed entries", slog.Int("count", len(entries)))
	return entries, nil
}

// GetByID implements store.EntryStore.GetByID.
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *PostgresEntryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, date, hours, notes, created_at, updated_at
		FROM entries
		WHERE id = $1
	`

	var entry domain.Entry
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Name,
		&entry.Date,
		&entry.Hours,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entry not found", slog.String("entry_id", id.String()))
			return nil, store.ErrEntryNotFound
		}
		log.Error("failed to get entry by ID",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}

	return &entry, nil
}

// Create implements store.EntryStore.Create.
// It revalidates the entry before persisting; validation errors from the
// domain are returned as-is so callers can map them to client errors.
func (s *PostgresEntryStore) Create(ctx context.Context, entry *domain.Entry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO entries (id, name, date, hours, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Name,
		entry.Date,
		entry.Hours,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return MapError(err)
	}

	log.Info("entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("name", entry.Name))
	return nil
}

// Update implements store.EntryStore.Update.
// It loads the current row, applies the patch (which revalidates supplied
// fields and refreshes UpdatedAt), and writes the result back.
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *PostgresEntryStore) Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(entry); err != nil {
		log.Warn("entry validation failed during update",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, err
	}

	query := `
		UPDATE entries
		SET name = $1, date = $2, hours = $3, notes = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		entry.Name,
		entry.Date,
		entry.Hours,
		entry.Notes,
		entry.UpdatedAt,
		entry.ID,
	)

	if err != nil {
		log.Error("failed to update entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}

	// The row vanished between the read and the write.
	if rowsAffected == 0 {
		log.Debug("entry not found for update", slog.String("entry_id", id.String()))
		return nil, store.ErrEntryNotFound
	}

	log.Info("entry updated", slog.String("entry_id", id.String()))
	return entry, nil
}

// Delete implements store.EntryStore.Delete.
// Returns the deleted entry, or store.ErrEntryNotFound if it did not exist.
func (s *PostgresEntryStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM entries
		WHERE id = $1
		RETURNING id, name, date, hours, notes, created_at, updated_at
	`

	var entry domain.Entry
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Name,
		&entry.Date,
		&entry.Hours,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entry not found for delete", slog.String("entry_id", id.String()))
			return nil, store.ErrEntryNotFound
		}
		log.Error("failed to delete entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("entry deleted", slog.String("entry_id", id.String()))
	return &entry, nil
}
