package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/learnlog/learnlog-api/internal/domain"
)

// EntryStore defines the interface for entry data persistence.
type EntryStore interface {
	// ListAll retrieves every entry, ordered by session date descending
	// (entry ID ascending between equal dates, so the order is stable).
	// Returns an empty slice when no entries exist.
	ListAll(ctx context.Context) ([]*domain.Entry, error)

	// GetByID retrieves an entry by its unique ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)

	// Create saves a new entry to the store. The entry is revalidated
	// before persisting; validation errors from the domain are returned
	// unwrapped so callers can map them.
	Create(ctx context.Context, entry *domain.Entry) error

	// Update applies a partial update to an existing entry and returns the
	// post-update entry. A supplied invalid field rejects the whole update.
	// Returns ErrEntryNotFound if the entry does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.Entry, error)

	// Delete removes an entry from the store and returns the deleted entry.
	// Returns ErrEntryNotFound if the entry does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
}
