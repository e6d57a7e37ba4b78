package api

import (
	"net/http"

	"github.com/learnlog/learnlog-api/internal/domain"
	"github.com/learnlog/learnlog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. Validation failures are client errors, missing entities are 404,
// and anything else is treated as a store failure.
func MapErrorToStatusCode(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
