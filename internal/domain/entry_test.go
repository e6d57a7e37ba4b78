package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDate() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entryName string
		date      time.Time
		hours     float64
		notes     string
		wantErr   error
	}{
		{
			name:      "valid_entry",
			entryName: "Alice",
			date:      validDate(),
			hours:     2.5,
			notes:     "chapter 3",
		},
		{
			name:      "name_trimmed_and_accepted",
			entryName: "  AB  ",
			date:      validDate(),
			hours:     1,
		},
		{
			name:      "single_character_name_rejected",
			entryName: "A",
			date:      validDate(),
			hours:     1,
			wantErr:   ErrNameTooShort,
		},
		{
			name:      "blank_name_rejected",
			entryName: "   ",
			date:      validDate(),
			hours:     1,
			wantErr:   ErrNameRequired,
		},
		{
			name:      "zero_hours_rejected",
			entryName: "Alice",
			date:      validDate(),
			hours:     0,
			wantErr:   ErrHoursOutOfRange,
		},
		{
			name:      "hours_above_24_rejected",
			entryName: "Alice",
			date:      validDate(),
			hours:     25,
			wantErr:   ErrHoursOutOfRange,
		},
		{
			name:      "hours_at_24_accepted",
			entryName: "Alice",
			date:      validDate(),
			hours:     24,
		},
		{
			name:      "small_positive_hours_accepted",
			entryName: "Alice",
			date:      validDate(),
			hours:     0.1,
		},
		{
			name:      "zero_date_rejected",
			entryName: "Alice",
			hours:     1,
			wantErr:   ErrDateRequired,
		},
		{
			name:      "future_date_rejected",
			entryName: "Alice",
			date:      time.Now().Add(24 * time.Hour),
			hours:     1,
			wantErr:   ErrDateInFuture,
		},
		{
			name:      "date_equal_to_now_accepted",
			entryName: "Alice",
			date:      time.Now(),
			hours:     1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry, err := NewEntry(tc.entryName, tc.date, tc.hours, tc.notes)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, entry)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, entry.ID)
			assert.Equal(t, tc.hours, entry.Hours)
			assert.False(t, entry.CreatedAt.IsZero())
			assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
		})
	}
}

func TestNewEntry_TrimsFields(t *testing.T) {
	t.Parallel()

	entry, err := NewEntry("  Alice  ", validDate(), 3, "  some notes  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", entry.Name)
	assert.Equal(t, "some notes", entry.Notes)
}

func TestEntryPatch_Apply(t *testing.T) {
	t.Parallel()

	newEntry := func(t *testing.T) *Entry {
		t.Helper()
		entry, err := NewEntry("Alice", validDate(), 3, "original notes")
		require.NoError(t, err)
		return entry
	}

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("empty_patch_only_advances_updated_at", func(t *testing.T) {
		t.Parallel()

		entry := newEntry(t)
		before := *entry
		time.Sleep(time.Millisecond)

		require.NoError(t, EntryPatch{}.Apply(entry))

		assert.Equal(t, before.Name, entry.Name)
		assert.Equal(t, before.Date, entry.Date)
		assert.Equal(t, before.Hours, entry.Hours)
		assert.Equal(t, before.Notes, entry.Notes)
		assert.Equal(t, before.CreatedAt, entry.CreatedAt)
		assert.True(t, entry.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("supplied_fields_overwrite", func(t *testing.T) {
		t.Parallel()

		entry := newEntry(t)
		newDate := validDate().AddDate(0, 0, -1)
		patch := EntryPatch{
			Name:  strPtr("Bob"),
			Date:  &newDate,
			Hours: floatPtr(5),
		}

		require.NoError(t, patch.Apply(entry))

		assert.Equal(t, "Bob", entry.Name)
		assert.Equal(t, newDate, entry.Date)
		assert.Equal(t, float64(5), entry.Hours)
		assert.Equal(t, "original notes", entry.Notes)
	})

	t.Run("empty_notes_overwrite", func(t *testing.T) {
		t.Parallel()

		entry := newEntry(t)
		require.NoError(t, EntryPatch{Notes: strPtr("")}.Apply(entry))
		assert.Equal(t, "", entry.Notes)
	})

	t.Run("invalid_field_rejects_whole_patch", func(t *testing.T) {
		t.Parallel()

		entry := newEntry(t)
		before := *entry
		patch := EntryPatch{
			Name:  strPtr("Bob"),
			Hours: floatPtr(30),
		}

		err := patch.Apply(entry)
		assert.ErrorIs(t, err, ErrHoursOutOfRange)
		assert.Equal(t, before, *entry)
	})

	t.Run("future_date_rejected", func(t *testing.T) {
		t.Parallel()

		entry := newEntry(t)
		future := time.Now().Add(24 * time.Hour)
		err := EntryPatch{Date: &future}.Apply(entry)
		assert.ErrorIs(t, err, ErrDateInFuture)
	})
}

func TestEntryPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, EntryPatch{}.IsEmpty())

	name := "Alice"
	assert.False(t, EntryPatch{Name: &name}.IsEmpty())
}
