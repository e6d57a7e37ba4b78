package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/learnlog/learnlog-api/internal/domain"
)

// dateOnlyLayout is the compact wire format for session dates.
const dateOnlyLayout = "2006-01-02"

// EntryResponse represents the response data for an entry.
type EntryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Hours     float64   `json:"hours"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEntryRequest represents the request body for creating an entry.
// Hours is a pointer so a present-but-zero value fails the range check
// instead of the required check.
type CreateEntryRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Date  string   `json:"date"  validate:"required"`
	Hours *float64 `json:"hours" validate:"required"`
	Notes string   `json:"notes"`
}

// UpdateEntryRequest represents the request body for a partial update.
// Nil fields leave the stored value untouched; a supplied notes field
// overwrites, even when empty.
type UpdateEntryRequest struct {
	Name  *string  `json:"name"`
	Date  *string  `json:"date"`
	Hours *float64 `json:"hours"`
	Notes *string  `json:"notes"`
}

// DeleteEntryResponse is the body returned after a successful delete.
type DeleteEntryResponse struct {
	Message string        `json:"message"`
	Entry   EntryResponse `json:"entry"`
}

// MessageResponse is a plain informational body, used by the liveness route.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseEntryDate parses a session date from its wire form: YYYY-MM-DD, or
// RFC 3339 for clients that send full timestamps.
func parseEntryDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", value)
}

// requiredFieldsMessage converts validator errors on CreateEntryRequest
// into the client-facing message. Missing required fields share one
// message; anything else falls back to a generic validation message.
func requiredFieldsMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return "name, date, and hours are required"
			}
		}
	}
	return "validation error"
}

// entryToResponse converts a domain.Entry to an EntryResponse.
func entryToResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID.String(),
		Name:      entry.Name,
		Date:      entry.Date,
		Hours:     entry.Hours,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
