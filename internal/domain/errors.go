// Package domain defines the core business entities and errors.
package domain

import "errors"

// Entry field-validation errors. The messages are client-facing: handlers
// return them verbatim in 400 responses.
var (
	// ErrNameRequired is returned when an entry name is missing or blank.
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooShort is returned when an entry name has fewer than two characters.
	ErrNameTooShort = errors.New("name must be at least 2 characters")

	// ErrDateRequired is returned when an entry date is missing.
	ErrDateRequired = errors.New("date is required")

	// ErrDateInFuture is returned when an entry date is later than the server clock.
	ErrDateInFuture = errors.New("date cannot be in the future")

	// ErrHoursOutOfRange is returned when hours fall outside the (0, 24] range.
	ErrHoursOutOfRange = errors.New("hours must be between 0 and 24")

	// ErrEntryIDEmpty is returned when an entry ID is nil.
	ErrEntryIDEmpty = errors.New("entry ID cannot be empty")
)

// validationErrors enumerates every field-validation error so callers can
// classify with IsValidationError instead of listing cases themselves.
var validationErrors = []error{
	ErrNameRequired,
	ErrNameTooShort,
	ErrDateRequired,
	ErrDateInFuture,
	ErrHoursOutOfRange,
	ErrEntryIDEmpty,
}

// IsValidationError reports whether err is (or wraps) any entry
// field-validation error. Handlers map these to 400 responses.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
