//go:build !integration

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestAvailability tests the capacity split for various usage levels.
func TestAvailability(t *testing.T) {
	tests := []struct {
		name            string
		size            float64
		used            float64
		fromClicks      float64
		fromSyringe     float64
		total           float64
		clicksRemaining int
	}{
		{
			name:            "fresh 10mg pen",
			size:            10,
			used:            0,
			fromClicks:      40,
			fromSyringe:     10,
			total:           50,
			clicksRemaining: 240,
		},
		{
			name:            "10mg pen after 35mg used",
			size:            10,
			used:            35,
			fromClicks:      5,
			fromSyringe:     10,
			total:           15,
			clicksRemaining: 30,
		},
		{
			name:            "10mg pen dial exhausted exactly",
			size:            10,
			used:            40,
			fromClicks:      0,
			fromSyringe:     10,
			total:           10,
			clicksRemaining: 0,
		},
		{
			name:            "10mg pen into syringe territory",
			size:            10,
			used:            45,
			fromClicks:      0,
			fromSyringe:     5,
			total:           5,
			clicksRemaining: 0,
		},
		{
			name:            "10mg pen fully drained",
			size:            10,
			used:            50,
			fromClicks:      0,
			fromSyringe:     0,
			total:           0,
			clicksRemaining: 0,
		},
		{
			name:            "overdrawn usage clamps to zero",
			size:            10,
			used:            55,
			fromClicks:      0,
			fromSyringe:     0,
			total:           0,
			clicksRemaining: 0,
		},
		{
			name:            "5mg pen with fractional usage",
			size:            5,
			used:            12.5,
			fromClicks:      7.5,
			fromSyringe:     5,
			total:           12.5,
			clicksRemaining: 90,
		},
		{
			name:            "fresh 2.5mg pen",
			size:            2.5,
			used:            0,
			fromClicks:      10,
			fromSyringe:     2.5,
			total:           12.5,
			clicksRemaining: 240,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Availability(tt.size, tt.used)
			assert.Equal(t, tt.fromClicks, got.FromClicks)
			assert.Equal(t, tt.fromSyringe, got.FromSyringe)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.clicksRemaining, got.ClicksRemaining)
		})
	}
}

// TestAvailability_Sweep walks every catalog size through the full usage range
// in 0.1mg steps, checking that the split always sums to the total and that
// the total never increases as usage grows.
func TestAvailability_Sweep(t *testing.T) {
	for _, size := range model.DefaultPenSizes {
		t.Run(fmt.Sprintf("size %.1f", size), func(t *testing.T) {
			prev := Availability(size, 0)
			assert.Equal(t, deci(prev.FromClicks)+deci(prev.FromSyringe), deci(prev.Total))

			for used := int64(1); used <= deci(model.TotalCapacity(size)); used++ {
				got := Availability(size, float64(used)/10)
				assert.Equal(t, deci(got.FromClicks)+deci(got.FromSyringe), deci(got.Total),
					"split does not sum to total at used=%.1f", float64(used)/10)
				assert.LessOrEqual(t, deci(got.Total), deci(prev.Total),
					"total increased at used=%.1f", float64(used)/10)
				prev = got
			}

			assert.Zero(t, prev.Total, "fully drained pen should have nothing left")
		})
	}
}

// TestBreakdown_AgreesWithRequiresSyringe sweeps a grid of prior usage and
// dose amounts, checking that the standalone classifier and the breakdown
// flag always agree and that the split sums back to the dose.
func TestBreakdown_AgreesWithRequiresSyringe(t *testing.T) {
	for _, size := range model.DefaultPenSizes {
		totalCap := deci(model.TotalCapacity(size))
		for used := int64(0); used <= totalCap; used += 3 {
			for dose := int64(1); dose <= totalCap-used; dose += 7 {
				usedMg := float64(used) / 10
				doseMg := float64(dose) / 10

				got := Breakdown(size, usedMg, doseMg)
				assert.Equal(t, RequiresSyringe(size, usedMg, doseMg), got.RequiresSyringe,
					"size=%.1f used=%.1f dose=%.1f", size, usedMg, doseMg)
				assert.Equal(t, deci(doseMg), deci(got.FromClicks)+deci(got.FromSyringe),
					"size=%.1f used=%.1f dose=%.1f", size, usedMg, doseMg)
			}
		}
	}
}

// TestRequiresSyringe tests the click capacity boundary, including exact hits.
func TestRequiresSyringe(t *testing.T) {
	tests := []struct {
		name       string
		size       float64
		usedBefore float64
		doseMg     float64
		want       bool
	}{
		{"dose lands exactly on click capacity", 10, 35, 5, false},
		{"dose just past click capacity", 10, 35, 5.1, true},
		{"full dial in one dose", 10, 0, 40, false},
		{"one tenth over the dial", 10, 0, 40.1, true},
		{"fractional sums compare exactly", 2.5, 9.9, 0.1, false},
		{"fractional sums over the boundary", 2.5, 9.9, 0.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresSyringe(tt.size, tt.usedBefore, tt.doseMg))
		})
	}
}

// TestBreakdown tests the click and syringe split of a single dose.
func TestBreakdown(t *testing.T) {
	tests := []struct {
		name       string
		size       float64
		usedBefore float64
		doseMg     float64
		want       model.DoseBreakdown
	}{
		{
			name:       "dose straddling the click boundary",
			size:       10,
			usedBefore: 35,
			doseMg:     10,
			want:       model.DoseBreakdown{FromClicks: 5, FromSyringe: 5, ClickCount: 30, RequiresSyringe: true},
		},
		{
			name:       "dose fully within clicks",
			size:       10,
			usedBefore: 0,
			doseMg:     5,
			want:       model.DoseBreakdown{FromClicks: 5, FromSyringe: 0, ClickCount: 30, RequiresSyringe: false},
		},
		{
			name:       "dial already exhausted",
			size:       10,
			usedBefore: 42,
			doseMg:     5,
			want:       model.DoseBreakdown{FromClicks: 0, FromSyringe: 5, ClickCount: 0, RequiresSyringe: true},
		},
		{
			name:       "dose ending exactly at click capacity",
			size:       10,
			usedBefore: 30,
			doseMg:     10,
			want:       model.DoseBreakdown{FromClicks: 10, FromSyringe: 0, ClickCount: 60, RequiresSyringe: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Breakdown(tt.size, tt.usedBefore, tt.doseMg))
		})
	}
}

// TestIsDoseSyringe tests usage derivation from surrounding doses.
func TestIsDoseSyringe(t *testing.T) {
	pens := []model.Pen{
		{ID: "pen-1", Size: 10, PurchaseDate: day(2026, 1, 1), ExpirationDate: day(2026, 6, 1)},
	}

	tests := []struct {
		name  string
		dose  model.Dose
		doses []model.Dose
		want  bool
	}{
		{
			name: "prior usage pushes dose past the dial",
			dose: model.Dose{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			doses: []model.Dose{
				{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 10), Mg: 35, IsCompleted: true},
				{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			},
			want: true,
		},
		{
			name: "planned prior doses reserve capacity too",
			dose: model.Dose{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			doses: []model.Dose{
				{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 10), Mg: 35, IsCompleted: false},
				{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			},
			want: true,
		},
		{
			name: "same-day doses do not count as prior",
			dose: model.Dose{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			doses: []model.Dose{
				{ID: "d1", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 35, IsCompleted: true},
				{ID: "d2", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10},
			},
			want: false,
		},
		{
			name: "unknown pen returns false",
			dose: model.Dose{ID: "d1", PenID: "ghost", Date: day(2026, 2, 1), Mg: 50},
			doses: []model.Dose{
				{ID: "d1", PenID: "ghost", Date: day(2026, 2, 1), Mg: 50},
			},
			want: false,
		},
		{
			name:  "no prior usage within dial",
			dose:  model.Dose{ID: "d1", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 40},
			doses: []model.Dose{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDoseSyringe(tt.dose, pens, tt.doses))
		})
	}
}
