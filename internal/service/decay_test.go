//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// TestNewDecayCalculatorService tests the constructor and options.
func TestNewDecayCalculatorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []DecayOption
		validate func(*testing.T, *DecayCalculatorService)
	}{
		{
			name:    "uses default half-life when no options",
			options: nil,
			validate: func(t *testing.T, svc *DecayCalculatorService) {
				assert.Equal(t, DefaultHalfLifeDays, svc.HalfLifeDays())
			},
		},
		{
			name:    "uses custom half-life with option",
			options: []DecayOption{WithHalfLife(2.5)},
			validate: func(t *testing.T, svc *DecayCalculatorService) {
				assert.Equal(t, 2.5, svc.HalfLifeDays())
			},
		},
		{
			name:    "ignores non-positive half-life",
			options: []DecayOption{WithHalfLife(0)},
			validate: func(t *testing.T, svc *DecayCalculatorService) {
				assert.Equal(t, DefaultHalfLifeDays, svc.HalfLifeDays())
			},
		},
		{
			name:    "enables curve cache with option",
			options: []DecayOption{WithCurveCache(100, 5 * time.Minute)},
			validate: func(t *testing.T, svc *DecayCalculatorService) {
				assert.NotNil(t, svc.curveCache)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDecayCalculatorService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

// TestDecayCalculatorService_ConcentrationAt tests exponential decay sums.
func TestDecayCalculatorService_ConcentrationAt(t *testing.T) {
	dose10 := model.Dose{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 1), Mg: 10, IsCompleted: true}

	tests := []struct {
		name      string
		options   []DecayOption
		doses     []model.Dose
		at        time.Time
		actual    float64
		projected float64
	}{
		{
			name:      "full strength on the dose day",
			doses:     []model.Dose{dose10},
			at:        day(2026, 1, 1),
			actual:    10,
			projected: 10,
		},
		{
			name:      "half strength one half-life later",
			doses:     []model.Dose{dose10},
			at:        day(2026, 1, 6),
			actual:    5,
			projected: 5,
		},
		{
			name:      "quarter strength two half-lives later",
			doses:     []model.Dose{dose10},
			at:        day(2026, 1, 11),
			actual:    2.5,
			projected: 2.5,
		},
		{
			name:      "custom half-life decays faster",
			options:   []DecayOption{WithHalfLife(2.5)},
			doses:     []model.Dose{dose10},
			at:        day(2026, 1, 6),
			actual:    2.5,
			projected: 2.5,
		},
		{
			name: "doses stack additively",
			doses: []model.Dose{
				dose10,
				{ID: "d2", PenID: "pen-1", Date: day(2026, 1, 6), Mg: 10, IsCompleted: true},
			},
			at:        day(2026, 1, 6),
			actual:    15,
			projected: 15,
		},
		{
			name: "planned doses only count in the projection",
			doses: []model.Dose{
				dose10,
				{ID: "d2", PenID: "pen-1", Date: day(2026, 1, 6), Mg: 10, IsCompleted: false},
			},
			at:        day(2026, 1, 6),
			actual:    5,
			projected: 15,
		},
		{
			name:      "future doses contribute nothing",
			doses:     []model.Dose{dose10},
			at:        day(2025, 12, 25),
			actual:    0,
			projected: 0,
		},
		{
			name:      "no doses means zero concentration",
			doses:     []model.Dose{},
			at:        day(2026, 1, 1),
			actual:    0,
			projected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDecayCalculatorService(tt.options...)
			got := svc.ConcentrationAt(tt.doses, tt.at)
			assert.Equal(t, day(tt.at.Year(), tt.at.Month(), tt.at.Day()), got.Date)
			assert.InDelta(t, tt.actual, got.Actual, 1e-9)
			assert.InDelta(t, tt.projected, got.Projected, 1e-9)
		})
	}
}

// TestDecayCalculatorService_MonotoneBetweenDoses checks that the curve only
// ever rises on a dose day: on every other day the concentration is governed
// by decay alone, so each sample is at most the previous one.
func TestDecayCalculatorService_MonotoneBetweenDoses(t *testing.T) {
	svc := NewDecayCalculatorService()
	doses := []model.Dose{
		{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 1), Mg: 10, IsCompleted: true},
		{ID: "d2", PenID: "pen-1", Date: day(2026, 1, 8), Mg: 7.5, IsCompleted: true},
		{ID: "d3", PenID: "pen-1", Date: day(2026, 1, 15), Mg: 5, IsCompleted: false},
	}
	doseDays := map[string]bool{
		"2026-01-01": true,
		"2026-01-08": true,
		"2026-01-15": true,
	}

	points := svc.Curve(doses, day(2026, 1, 1), day(2026, 2, 15))
	for i := 1; i < len(points); i++ {
		date := points[i].Date.Format("2006-01-02")
		if doseDays[date] {
			continue
		}
		assert.LessOrEqual(t, points[i].Actual, points[i-1].Actual, "actual rose on %s", date)
		assert.LessOrEqual(t, points[i].Projected, points[i-1].Projected, "projected rose on %s", date)
	}
}

// TestDecayCalculatorService_Curve tests daily sampling over a range.
func TestDecayCalculatorService_Curve(t *testing.T) {
	svc := NewDecayCalculatorService()
	doses := []model.Dose{
		{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 1), Mg: 10, IsCompleted: true},
	}

	t.Run("samples one point per day inclusive", func(t *testing.T) {
		points := svc.Curve(doses, day(2026, 1, 1), day(2026, 1, 6))
		assert.Len(t, points, 6)
		assert.Equal(t, day(2026, 1, 1), points[0].Date)
		assert.Equal(t, day(2026, 1, 6), points[5].Date)
		assert.InDelta(t, 10, points[0].Actual, 1e-9)
		assert.InDelta(t, 5, points[5].Actual, 1e-9)

		// Strictly decreasing once the dose is in the past.
		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i].Actual, points[i-1].Actual)
		}
	})

	t.Run("single-day range yields one point", func(t *testing.T) {
		points := svc.Curve(doses, day(2026, 1, 3), day(2026, 1, 3))
		assert.Len(t, points, 1)
	})

	t.Run("inverted range yields empty slice", func(t *testing.T) {
		points := svc.Curve(doses, day(2026, 1, 6), day(2026, 1, 1))
		assert.Empty(t, points)
	})

	t.Run("cached curve matches the computed one", func(t *testing.T) {
		cached := NewDecayCalculatorService(WithCurveCache(10, time.Minute))
		first := cached.Curve(doses, day(2026, 1, 1), day(2026, 1, 6))
		second := cached.Curve(doses, day(2026, 1, 1), day(2026, 1, 6))
		assert.Equal(t, first, second)

		cached.InvalidateCache()
		third := cached.Curve(doses, day(2026, 1, 1), day(2026, 1, 6))
		assert.Equal(t, first, third)
	})
}
