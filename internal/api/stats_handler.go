package api

import (
	"log/slog"
	"net/http"

	"github.com/learnlog/learnlog-api/internal/api/shared"
	"github.com/learnlog/learnlog-api/internal/platform/logger"
	"github.com/learnlog/learnlog-api/internal/stats"
	"github.com/learnlog/learnlog-api/internal/store"
)

// StatsHandler handles statistics HTTP requests.
type StatsHandler struct {
	entryStore store.EntryStore
	logger     *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(entryStore store.EntryStore, log *slog.Logger) *StatsHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		entryStore: entryStore,
		logger:     log.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /api/stats requests. The aggregator recomputes from
// the full entry set on every call; entries arrive in listing order (date
// descending, id ascending), which fixes the leaderboard tie-break.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	entries, err := h.entryStore.ListAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"error fetching stats", err)
		return
	}

	summary := stats.Compute(entries)

	log.Debug("stats computed",
		slog.Int("total_entries", summary.TotalEntries),
		slog.Int("unique_learners", summary.UniqueLearners))
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
