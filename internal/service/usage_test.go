//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// TestPenUsage tests per-pen dose pooling.
func TestPenUsage(t *testing.T) {
	t.Run("completed and planned doses pool together", func(t *testing.T) {
		doses := []model.Dose{
			{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 1), Mg: 10, IsCompleted: true},
			{ID: "d2", PenID: "pen-1", Date: day(2026, 1, 8), Mg: 7.5, IsCompleted: false},
			{ID: "d3", PenID: "pen-2", Date: day(2026, 1, 8), Mg: 5, IsCompleted: true},
		}

		usage := PenUsage(doses)

		assert.Equal(t, 17.5, usage["pen-1"])
		assert.Equal(t, 5.0, usage["pen-2"])
	})

	t.Run("totals round to one decimal", func(t *testing.T) {
		doses := []model.Dose{
			{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 1), Mg: 0.1, IsCompleted: true},
			{ID: "d2", PenID: "pen-1", Date: day(2026, 1, 2), Mg: 0.2, IsCompleted: true},
		}

		usage := PenUsage(doses)

		assert.Equal(t, 0.3, usage["pen-1"])
	})

	t.Run("no doses yields an empty map", func(t *testing.T) {
		assert.Empty(t, PenUsage(nil))
	})
}
