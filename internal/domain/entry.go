package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// minNameLength is the minimum number of characters in a learner name,
// counted after trimming surrounding whitespace.
const minNameLength = 2

// maxHours is the upper bound of the valid hours range. The range is
// open-closed: hours must satisfy 0 < hours <= maxHours.
const maxHours = 24

// Entry represents one learner's logged study session.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Hours     float64   `json:"hours"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateName checks a learner name against the entry constraints.
// The name is evaluated after trimming surrounding whitespace.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(trimmed) < minNameLength {
		return ErrNameTooShort
	}
	return nil
}

// ValidateDate checks that a session date is set and not later than now.
// A date exactly equal to now is accepted.
func ValidateDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	if date.After(now) {
		return ErrDateInFuture
	}
	return nil
}

// ValidateHours checks that hours fall in the open-closed range (0, 24].
func ValidateHours(hours float64) error {
	if hours <= 0 || hours > maxHours {
		return ErrHoursOutOfRange
	}
	return nil
}

// NewEntry creates a new Entry from raw field values. Name and notes are
// trimmed, the ID is generated, and both timestamps are set to the current
// time in UTC. Returns a validation error if any field constraint fails.
func NewEntry(name string, date time.Time, hours float64, notes string) (*Entry, error) {
	now := time.Now().UTC()
	entry := &Entry{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Date:      date,
		Hours:     hours,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks that the Entry satisfies every field constraint.
// It is the single source of validation truth: the route layer calls it
// (directly or through the per-field functions) before touching the store,
// and the store calls it again before persisting.
func (e *Entry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEntryIDEmpty
	}
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if err := ValidateDate(e.Date, time.Now()); err != nil {
		return err
	}
	return ValidateHours(e.Hours)
}

// EntryPatch describes a partial update to an Entry. A nil field leaves the
// existing value untouched. Notes is overwritten whenever supplied, even
// with an empty string.
type EntryPatch struct {
	Name  *string
	Date  *time.Time
	Hours *float64
	Notes *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p EntryPatch) IsEmpty() bool {
	return p.Name == nil && p.Date == nil && p.Hours == nil && p.Notes == nil
}

// Validate checks every supplied field against its constraint. Fields left
// nil are not checked.
func (p EntryPatch) Validate() error {
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := ValidateDate(*p.Date, time.Now()); err != nil {
			return err
		}
	}
	if p.Hours != nil {
		if err := ValidateHours(*p.Hours); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the supplied fields onto the entry and refreshes UpdatedAt.
// A supplied invalid field rejects the whole patch and leaves the entry
// unmodified. UpdatedAt advances even for an empty patch.
func (p EntryPatch) Apply(e *Entry) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Hours != nil {
		e.Hours = *p.Hours
	}
	if p.Notes != nil {
		e.Notes = strings.TrimSpace(*p.Notes)
	}

	e.UpdatedAt = time.Now().UTC()
	return nil
}
