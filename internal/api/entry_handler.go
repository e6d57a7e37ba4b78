// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/learnlog/learnlog-api/internal/api/shared"
	"github.com/learnlog/learnlog-api/internal/domain"
	"github.com/learnlog/learnlog-api/internal/platform/logger"
	"github.com/learnlog/learnlog-api/internal/store"
)

// entryNotFoundMessage is the 404 body message for every entry route.
const entryNotFoundMessage = "entry not found"

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	entryStore store.EntryStore
	logger     *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryStore store.EntryStore, log *slog.Logger) *EntryHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EntryHandler")
	}

	return &EntryHandler{
		entryStore: entryStore,
		logger:     log.With(slog.String("component", "entry_handler")),
	}
}

// ListEntries handles GET /api/entries requests.
// It returns every entry, ordered by session date descending.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryStore.ListAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"error fetching entries", err)
		return
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entryToResponse(entry))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetEntry handles GET /api/entries/{id} requests.
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.entryIDFromPath(w, r)
	if !ok {
		return
	}

	entry, err := h.entryStore.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, entryNotFoundMessage)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"error fetching entry", err)
		return
	}

	log.Debug("entry retrieved", slog.String("entry_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(entry))
}

// CreateEntry handles POST /api/entries requests.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requiredFieldsMessage(err))
		return
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// NewEntry runs the full field validation before the store is touched.
	entry, err := domain.NewEntry(req.Name, date, *req.Hours, req.Notes)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.entryStore.Create(r.Context(), entry); err != nil {
		statusCode := MapErrorToStatusCode(err)
		message := "error creating entry"
		if statusCode == http.StatusBadRequest {
			message = err.Error()
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
		return
	}

	log.Info("entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("name", entry.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, entryToResponse(entry))
}

// UpdateEntry handles PUT /api/entries/{id} requests.
// Any subset of the entry fields may be supplied; omitted fields keep their
// stored values.
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.entryIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	patch := domain.EntryPatch{
		Name:  req.Name,
		Hours: req.Hours,
		Notes: req.Notes,
	}
	if req.Date != nil {
		date, err := parseEntryDate(*req.Date)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		patch.Date = &date
	}

	// Pre-validate the supplied fields at the boundary; the store runs the
	// same checks again when it applies the patch.
	if err := patch.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.entryStore.Update(r.Context(), id, patch)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		switch statusCode {
		case http.StatusBadRequest:
			shared.RespondWithError(w, r, statusCode, err.Error())
		case http.StatusNotFound:
			shared.RespondWithError(w, r, statusCode, entryNotFoundMessage)
		default:
			shared.RespondWithErrorAndLog(w, r, statusCode, "error updating entry", err)
		}
		return
	}

	log.Info("entry updated", slog.String("entry_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(entry))
}

// DeleteEntry handles DELETE /api/entries/{id} requests.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.entryIDFromPath(w, r)
	if !ok {
		return
	}

	entry, err := h.entryStore.Delete(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, entryNotFoundMessage)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"error deleting entry", err)
		return
	}

	log.Info("entry deleted", slog.String("entry_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteEntryResponse{
		Message: "entry deleted",
		Entry:   entryToResponse(entry),
	})
}

// entryIDFromPath extracts and parses the entry ID from the URL path.
// A malformed identifier is a lookup failure, not a client syntax error:
// it responds 404 and returns ok=false.
func (h *EntryHandler) entryIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathID := chi.URLParam(r, "id")
	id, err := uuid.Parse(pathID)
	if err != nil {
		log.Debug("malformed entry ID", slog.String("entry_id", pathID))
		shared.RespondWithError(w, r, http.StatusNotFound, entryNotFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}
