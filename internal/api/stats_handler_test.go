package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/learnlog/learnlog-api/internal/domain"
	"github.com/learnlog/learnlog-api/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRouter(entryStore *MockEntryStore) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewStatsHandler(entryStore, log)

	r := chi.NewRouter()
	r.Get("/api/stats", handler.GetStats)
	return r
}

func statsEntry(name string, hours float64) *domain.Entry {
	return &domain.Entry{
		ID:    uuid.New(),
		Name:  name,
		Date:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Hours: hours,
	}
}

func TestStatsHandler_GetStats(t *testing.T) {
	t.Parallel()

	t.Run("computes_summary_over_all_entries", func(t *testing.T) {
		t.Parallel()

		router := newStatsRouter(&MockEntryStore{
			ListAllFn: func(ctx context.Context) ([]*domain.Entry, error) {
				return []*domain.Entry{
					statsEntry("A", 3),
					statsEntry("B", 5),
					statsEntry("A", 2),
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got stats.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.TotalEntries)
		assert.Equal(t, float64(10), got.TotalHours)
		assert.Equal(t, 2, got.UniqueLearners)
		assert.Equal(t, 3.3, got.AvgHours)
		require.Len(t, got.TopLearners, 2)
		assert.Equal(t, "A", got.TopLearners[0].Name)
		assert.Equal(t, "B", got.TopLearners[1].Name)
	})

	t.Run("empty_store_yields_zero_summary", func(t *testing.T) {
		t.Parallel()

		router := newStatsRouter(&MockEntryStore{})

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"totalEntries":0,"totalHours":0,"uniqueLearners":0,"avgHours":0,"topLearners":[]}`,
			rec.Body.String())
	})

	t.Run("store_failure_returns_500_with_error_echo", func(t *testing.T) {
		t.Parallel()

		router := newStatsRouter(&MockEntryStore{
			ListAllFn: func(ctx context.Context) ([]*domain.Entry, error) {
				return nil, errors.New("connection reset")
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "error fetching stats", got["message"])
		assert.Equal(t, "connection reset", got["error"])
	})
}
