// Package stats computes aggregate statistics over the full entry set.
// Everything here is a pure function: the aggregator is invoked on every
// statistics request and recomputes from scratch, O(n) in entry count.
package stats

import (
	"math"
	"sort"

	"github.com/learnlog/learnlog-api/internal/domain"
)

// leaderboardSize is the number of learners kept on the leaderboard.
const leaderboardSize = 5

// LearnerTotal is one leaderboard row: a learner's accumulated hours and
// entry count.
type LearnerTotal struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Entries int     `json:"entries"`
}

// Summary holds the derived statistics for the current entry set.
// TotalHours and AvgHours are rounded to one decimal place for output;
// leaderboard hours keep full precision.
type Summary struct {
	TotalEntries   int            `json:"totalEntries"`
	TotalHours     float64        `json:"totalHours"`
	UniqueLearners int            `json:"uniqueLearners"`
	AvgHours       float64        `json:"avgHours"`
	TopLearners    []LearnerTotal `json:"topLearners"`
}

// Compute derives a Summary from the given entries. Learner names are
// grouped by exact, case-sensitive string match. The leaderboard is sorted
// by total hours descending; learners with equal totals keep the order in
// which they first appeared in the input (stable sort), so callers control
// the tie-break by the order they supply entries in.
func Compute(entries []*domain.Entry) Summary {
	totalEntries := len(entries)

	var totalHours float64
	groups := make(map[string]*LearnerTotal, len(entries))
	order := make([]*LearnerTotal, 0, len(entries))

	for _, entry := range entries {
		totalHours += entry.Hours

		group, ok := groups[entry.Name]
		if !ok {
			group = &LearnerTotal{Name: entry.Name}
			groups[entry.Name] = group
			order = append(order, group)
		}
		group.Hours += entry.Hours
		group.Entries++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Hours > order[j].Hours
	})
	if len(order) > leaderboardSize {
		order = order[:leaderboardSize]
	}

	// Copy out of the pointer slice so the Summary is a plain value; also
	// guarantees topLearners marshals as [] rather than null when empty.
	topLearners := make([]LearnerTotal, len(order))
	for i, group := range order {
		topLearners[i] = *group
	}

	var avgHours float64
	if totalEntries > 0 {
		avgHours = totalHours / float64(totalEntries)
	}

	return Summary{
		TotalEntries:   totalEntries,
		TotalHours:     round1(totalHours),
		UniqueLearners: len(groups),
		AvgHours:       round1(avgHours),
		TopLearners:    topLearners,
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
