//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// TestSummarizeWeights tests the weight history reduction.
func TestSummarizeWeights(t *testing.T) {
	t.Run("empty history yields the zero summary", func(t *testing.T) {
		assert.Equal(t, model.WeightStats{}, SummarizeWeights(nil))
	})

	t.Run("single entry spans zero days", func(t *testing.T) {
		stats := SummarizeWeights([]model.Weight{
			{ID: "w1", Date: day(2026, 1, 1), WeightKg: 95},
		})
		assert.Equal(t, model.WeightStats{
			StartWeightKg:   95,
			CurrentWeightKg: 95,
			TotalChangeKg:   0,
			DaySpan:         0,
		}, stats)
	})

	t.Run("entries are ordered by date regardless of input order", func(t *testing.T) {
		stats := SummarizeWeights([]model.Weight{
			{ID: "w2", Date: day(2026, 2, 1), WeightKg: 92.4},
			{ID: "w1", Date: day(2026, 1, 1), WeightKg: 95.1},
			{ID: "w3", Date: day(2026, 3, 1), WeightKg: 90.7},
		})
		assert.Equal(t, model.WeightStats{
			StartWeightKg:   95.1,
			CurrentWeightKg: 90.7,
			TotalChangeKg:   -4.4,
			DaySpan:         59,
		}, stats)
	})

	t.Run("same-day entries break ties by id", func(t *testing.T) {
		stats := SummarizeWeights([]model.Weight{
			{ID: "w2", Date: day(2026, 1, 1), WeightKg: 94},
			{ID: "w1", Date: day(2026, 1, 1), WeightKg: 95},
		})
		assert.Equal(t, 95.0, stats.StartWeightKg)
		assert.Equal(t, 94.0, stats.CurrentWeightKg)
	})
}
