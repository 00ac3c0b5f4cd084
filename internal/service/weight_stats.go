package service

import (
	"sort"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// SummarizeWeights reduces a weight history to its start-to-current change.
// Entries are ordered by date (ties by id); an empty history yields the zero
// summary and a single entry spans zero days with zero change.
func SummarizeWeights(entries []model.Weight) model.WeightStats {
	if len(entries) == 0 {
		return model.WeightStats{}
	}

	sorted := make([]model.Weight, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]

	return model.WeightStats{
		StartWeightKg:   first.WeightKg,
		CurrentWeightKg: last.WeightKg,
		TotalChangeKg:   round1(last.WeightKg - first.WeightKg),
		DaySpan:         daysBetween(first.Date, last.Date),
	}
}
