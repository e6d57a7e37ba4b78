package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/learnlog/learnlog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntry(name string, hours float64) *domain.Entry {
	return &domain.Entry{
		ID:    uuid.New(),
		Name:  name,
		Date:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Hours: hours,
	}
}

func TestCompute_NoEntries(t *testing.T) {
	t.Parallel()

	summary := Compute(nil)

	assert.Equal(t, 0, summary.TotalEntries)
	assert.Equal(t, float64(0), summary.TotalHours)
	assert.Equal(t, 0, summary.UniqueLearners)
	assert.Equal(t, float64(0), summary.AvgHours)
	require.NotNil(t, summary.TopLearners)
	assert.Empty(t, summary.TopLearners)
}

func TestCompute_TotalsAndLeaderboard(t *testing.T) {
	t.Parallel()

	entries := []*domain.Entry{
		makeEntry("A", 3),
		makeEntry("B", 5),
		makeEntry("A", 2),
	}

	summary := Compute(entries)

	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, float64(10), summary.TotalHours)
	assert.Equal(t, 2, summary.UniqueLearners)
	assert.Equal(t, 3.3, summary.AvgHours)

	// A and B both total 5 hours; A appeared first, so the stable sort
	// keeps A ahead of B.
	require.Len(t, summary.TopLearners, 2)
	assert.Equal(t, LearnerTotal{Name: "A", Hours: 5, Entries: 2}, summary.TopLearners[0])
	assert.Equal(t, LearnerTotal{Name: "B", Hours: 5, Entries: 1}, summary.TopLearners[1])
}

func TestCompute_LeaderboardOrdersByHoursDescending(t *testing.T) {
	t.Parallel()

	entries := []*domain.Entry{
		makeEntry("low", 1),
		makeEntry("high", 8),
		makeEntry("mid", 4),
	}

	summary := Compute(entries)

	require.Len(t, summary.TopLearners, 3)
	assert.Equal(t, "high", summary.TopLearners[0].Name)
	assert.Equal(t, "mid", summary.TopLearners[1].Name)
	assert.Equal(t, "low", summary.TopLearners[2].Name)
}

func TestCompute_LeaderboardTruncatesToFive(t *testing.T) {
	t.Parallel()

	var entries []*domain.Entry
	for i := 0; i < 8; i++ {
		entries = append(entries, makeEntry(fmt.Sprintf("learner-%d", i), float64(8-i)))
	}

	summary := Compute(entries)

	assert.Equal(t, 8, summary.UniqueLearners)
	require.Len(t, summary.TopLearners, 5)
	assert.Equal(t, "learner-0", summary.TopLearners[0].Name)
	assert.Equal(t, "learner-4", summary.TopLearners[4].Name)
}

func TestCompute_NamesAreCaseSensitive(t *testing.T) {
	t.Parallel()

	entries := []*domain.Entry{
		makeEntry("alice", 2),
		makeEntry("Alice", 3),
	}

	summary := Compute(entries)

	assert.Equal(t, 2, summary.UniqueLearners)
	require.Len(t, summary.TopLearners, 2)
	assert.Equal(t, "Alice", summary.TopLearners[0].Name)
}

func TestCompute_RoundsTotalsForOutput(t *testing.T) {
	t.Parallel()

	entries := []*domain.Entry{
		makeEntry("A", 1.25),
		makeEntry("B", 1.25),
		makeEntry("C", 1.25),
	}

	summary := Compute(entries)

	// 3.75 rounds to 3.8 for output; the average 1.25 rounds to 1.3.
	assert.Equal(t, 3.8, summary.TotalHours)
	assert.Equal(t, 1.3, summary.AvgHours)

	// Leaderboard hours keep full precision.
	assert.Equal(t, 1.25, summary.TopLearners[0].Hours)
}
