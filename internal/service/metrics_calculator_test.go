//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// testNow is the single reference instant used across metric tests. The
// time-of-day component checks that inputs are normalized to calendar days.
var testNow = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

// TestNewMetricsCalculatorService tests the constructor and options.
func TestNewMetricsCalculatorService(t *testing.T) {
	t.Run("uses default expiring-soon window", func(t *testing.T) {
		svc := NewMetricsCalculatorService()
		assert.Equal(t, DefaultExpiringSoonDays, svc.expiringSoonDays)
	})

	t.Run("uses custom window with option", func(t *testing.T) {
		svc := NewMetricsCalculatorService(WithExpiringSoonWindow(30))
		assert.Equal(t, 30, svc.expiringSoonDays)
	})

	t.Run("ignores non-positive window", func(t *testing.T) {
		svc := NewMetricsCalculatorService(WithExpiringSoonWindow(0))
		assert.Equal(t, DefaultExpiringSoonDays, svc.expiringSoonDays)
	})
}

// TestPenMetrics_FreshPen tests a pen with no doses at all.
func TestPenMetrics_FreshPen(t *testing.T) {
	svc := NewMetricsCalculatorService()
	pen := model.Pen{ID: "pen-1", Size: 10, PurchaseDate: day(2026, 1, 1), ExpirationDate: day(2026, 6, 9)}

	m := svc.PenMetrics(pen, nil, map[string]float64{}, testNow)

	assert.Equal(t, "pen-1", m.PenID)
	assert.Equal(t, 50.0, m.TotalCapacity)
	assert.Equal(t, 0.0, m.Usage)
	assert.Equal(t, 50.0, m.Remaining)
	assert.Equal(t, 0.0, m.UsageEfficiency)
	assert.Equal(t, 100, m.DaysUntilExpiry)
	assert.False(t, m.IsExpired)
	assert.False(t, m.IsExpiringSoon)
	assert.False(t, m.IsEmpty)
	assert.Nil(t, m.LastUseDate)
	assert.Nil(t, m.DaysBetweenLastUseAndExpiry)
	assert.Equal(t, 0.0, m.WastedMg)
	assert.Equal(t, 0, m.DoseCount)
	assert.False(t, m.HasPlannedDoses)
	assert.Equal(t, model.RiskKindNone, m.Risk.Kind)
	assert.Equal(t, model.RiskNone, m.RiskLevel)
}

// TestPenMetrics_ExpiringSoon tests the expiring-soon window boundaries.
func TestPenMetrics_ExpiringSoon(t *testing.T) {
	tests := []struct {
		name    string
		options []MetricsOption
		expiry  time.Time
		soon    bool
		expired bool
	}{
		{"expiry today counts as soon", nil, day(2026, 3, 1), true, false},
		{"expiry at window edge counts", nil, day(2026, 3, 15), true, false},
		{"expiry past window does not", nil, day(2026, 3, 16), false, false},
		{"expired pens are not soon", nil, day(2026, 2, 28), false, true},
		{"custom window widens the check", []MetricsOption{WithExpiringSoonWindow(30)}, day(2026, 3, 21), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMetricsCalculatorService(tt.options...)
			pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: tt.expiry}
			m := svc.PenMetrics(pen, nil, map[string]float64{}, testNow)
			assert.Equal(t, tt.soon, m.IsExpiringSoon)
			assert.Equal(t, tt.expired, m.IsExpired)
		})
	}
}

// TestPenMetrics_ExpiredWithMedication tests waste accounting on expiry.
func TestPenMetrics_ExpiredWithMedication(t *testing.T) {
	svc := NewMetricsCalculatorService()
	pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 2, 19)}
	doses := []model.Dose{
		{ID: "d1", PenID: "pen-1", Date: day(2026, 1, 30), Mg: 35, IsCompleted: true},
	}

	m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

	assert.Equal(t, -10, m.DaysUntilExpiry)
	assert.True(t, m.IsExpired)
	assert.Equal(t, 35.0, m.Usage)
	assert.Equal(t, 15.0, m.Remaining)
	assert.Equal(t, 15.0, m.WastedMg)
	assert.InDelta(t, 30.0, m.WastePercentage, 1e-9)

	require.NotNil(t, m.LastUseDate)
	assert.Equal(t, day(2026, 1, 30), *m.LastUseDate)
	require.NotNil(t, m.DaysBetweenLastUseAndExpiry)
	assert.Equal(t, 20, *m.DaysBetweenLastUseAndExpiry)

	// Expired pens get no risk assessment; the waste already happened.
	assert.Equal(t, model.RiskKindNone, m.Risk.Kind)
	assert.Equal(t, model.RiskNone, m.RiskLevel)
}

// TestPenMetrics_PlannedSchedule tests the forward simulation branch.
func TestPenMetrics_PlannedSchedule(t *testing.T) {
	svc := NewMetricsCalculatorService()

	t.Run("schedule partially fits, runs out mid-way", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 21)}
		doses := []model.Dose{
			{ID: "c1", PenID: "pen-1", Date: day(2026, 1, 5), Mg: 10, IsCompleted: true},
			{ID: "c2", PenID: "pen-1", Date: day(2026, 1, 12), Mg: 10, IsCompleted: true},
			{ID: "c3", PenID: "pen-1", Date: day(2026, 1, 19), Mg: 10, IsCompleted: true},
			{ID: "c4", PenID: "pen-1", Date: day(2026, 1, 26), Mg: 10, IsCompleted: true},
			{ID: "p1", PenID: "pen-1", Date: day(2026, 3, 6), Mg: 10, IsCompleted: false},
			{ID: "p2", PenID: "pen-1", Date: day(2026, 3, 9), Mg: 10, IsCompleted: false},
		}

		m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

		assert.Equal(t, model.RiskKindPlanned, m.Risk.Kind)
		assert.Equal(t, model.RiskMedium, m.RiskLevel)
		require.NotNil(t, m.Risk.Planned)

		proj := m.Risk.Planned
		assert.True(t, proj.WillRunOutBeforeComplete)
		require.NotNil(t, proj.LastDoseDate)
		assert.Equal(t, day(2026, 3, 6), *proj.LastDoseDate)
		require.NotNil(t, proj.DaysBeforeExpiry)
		assert.Equal(t, 15, *proj.DaysBeforeExpiry)
		assert.Equal(t, 0.0, proj.WasteMg)
		assert.Empty(t, proj.DosesAfterExpiry)

		// Planned doses reserve capacity, so the pen reads as fully committed.
		assert.True(t, m.IsEmpty)
		assert.Equal(t, 60.0, m.Usage)
		assert.Equal(t, 2, m.PlannedDoseCount)
		assert.Equal(t, 4, m.CompletedDoseCount)
	})

	t.Run("every planned dose after expiry is critical", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 11)}
		doses := []model.Dose{
			{ID: "p1", PenID: "pen-1", Date: day(2026, 3, 16), Mg: 5, IsCompleted: false},
		}

		m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

		assert.Equal(t, model.RiskKindPlanned, m.Risk.Kind)
		assert.Equal(t, model.RiskCritical, m.RiskLevel)
		require.NotNil(t, m.Risk.Planned)

		proj := m.Risk.Planned
		assert.Nil(t, proj.LastDoseDate)
		assert.False(t, proj.WillRunOutBeforeComplete)
		assert.Equal(t, 45.0, proj.WasteMg)
		require.Len(t, proj.DosesAfterExpiry, 1)
		assert.Equal(t, "p1", proj.DosesAfterExpiry[0].DoseID)
		assert.Equal(t, 5, proj.DosesAfterExpiry[0].DaysAfterExpiry)
	})

	t.Run("schedule finishing long before expiry is low risk", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 4, 10)}
		doses := []model.Dose{
			{ID: "p1", PenID: "pen-1", Date: day(2026, 3, 3), Mg: 5, IsCompleted: false},
		}

		m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

		assert.Equal(t, model.RiskKindPlanned, m.Risk.Kind)
		assert.Equal(t, model.RiskLow, m.RiskLevel)
		require.NotNil(t, m.Risk.Planned)
		assert.Equal(t, 45.0, m.Risk.Planned.WasteMg)
		require.NotNil(t, m.Risk.Planned.DaysBeforeExpiry)
		assert.Equal(t, 38, *m.Risk.Planned.DaysBeforeExpiry)
	})

	t.Run("oversized dose is skipped, later smaller dose still taken", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 21)}
		doses := []model.Dose{
			{ID: "c1", PenID: "pen-1", Date: day(2026, 1, 5), Mg: 40, IsCompleted: true},
			{ID: "p1", PenID: "pen-1", Date: day(2026, 3, 4), Mg: 12, IsCompleted: false},
			{ID: "p2", PenID: "pen-1", Date: day(2026, 3, 7), Mg: 10, IsCompleted: false},
		}

		m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

		require.NotNil(t, m.Risk.Planned)
		proj := m.Risk.Planned
		assert.True(t, proj.WillRunOutBeforeComplete)
		require.NotNil(t, proj.LastDoseDate)
		assert.Equal(t, day(2026, 3, 7), *proj.LastDoseDate)
		assert.Equal(t, 0.0, proj.WasteMg)
	})
}

// TestPenMetrics_HistoricalCadence tests the cadence extrapolation branch.
func TestPenMetrics_HistoricalCadence(t *testing.T) {
	svc := NewMetricsCalculatorService()

	weekly := []model.Dose{
		{ID: "c1", PenID: "pen-1", Date: day(2026, 2, 8), Mg: 10, IsCompleted: true},
		{ID: "c2", PenID: "pen-1", Date: day(2026, 2, 15), Mg: 10, IsCompleted: true},
		{ID: "c3", PenID: "pen-1", Date: day(2026, 2, 22), Mg: 10, IsCompleted: true},
	}

	t.Run("cadence slightly outlasting expiry is low risk", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 11)}
		m := svc.PenMetrics(pen, weekly, PenUsage(weekly), testNow)

		assert.Equal(t, model.RiskKindHistorical, m.Risk.Kind)
		assert.Equal(t, model.RiskLow, m.RiskLevel)
		require.NotNil(t, m.Risk.Historical)
		assert.InDelta(t, 14, m.Risk.Historical.EstimatedDaysToEmpty, 1e-9)
		assert.InDelta(t, 10, m.Risk.Historical.AvgDoseMg, 1e-9)
		assert.InDelta(t, 7, m.Risk.Historical.AvgDaysBetweenDoses, 1e-9)
	})

	t.Run("cadence far outlasting expiry is high risk", func(t *testing.T) {
		fortnightly := []model.Dose{
			{ID: "c1", PenID: "pen-1", Date: day(2026, 2, 1), Mg: 10, IsCompleted: true},
			{ID: "c2", PenID: "pen-1", Date: day(2026, 2, 15), Mg: 10, IsCompleted: true},
			{ID: "c3", PenID: "pen-1", Date: day(2026, 3, 1), Mg: 10, IsCompleted: true},
		}
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 11)}
		m := svc.PenMetrics(pen, fortnightly, PenUsage(fortnightly), testNow)

		assert.Equal(t, model.RiskKindHistorical, m.Risk.Kind)
		assert.Equal(t, model.RiskHigh, m.RiskLevel)
		require.NotNil(t, m.Risk.Historical)
		assert.InDelta(t, 28, m.Risk.Historical.EstimatedDaysToEmpty, 1e-9)
	})

	t.Run("cadence finishing before expiry carries no risk level", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 4, 10)}
		m := svc.PenMetrics(pen, weekly, PenUsage(weekly), testNow)

		assert.Equal(t, model.RiskKindHistorical, m.Risk.Kind)
		assert.Equal(t, model.RiskNone, m.RiskLevel)
		require.NotNil(t, m.Risk.Historical)
		assert.InDelta(t, 14, m.Risk.Historical.EstimatedDaysToEmpty, 1e-9)
	})

	t.Run("a single completed dose gives no assessment", func(t *testing.T) {
		pen := model.Pen{ID: "pen-1", Size: 10, ExpirationDate: day(2026, 3, 11)}
		doses := weekly[:1]
		m := svc.PenMetrics(pen, doses, PenUsage(doses), testNow)

		assert.Equal(t, model.RiskKindNone, m.Risk.Kind)
		assert.Nil(t, m.Risk.Historical)
	})
}

// TestSystemMetrics tests the portfolio aggregation.
func TestSystemMetrics(t *testing.T) {
	svc := NewMetricsCalculatorService()

	t.Run("no pens short-circuits to the zero report", func(t *testing.T) {
		doses := []model.Dose{
			{ID: "d1", PenID: "ghost", Date: day(2026, 1, 1), Mg: 5, IsCompleted: true},
		}
		m := svc.SystemMetrics(nil, doses, testNow)

		assert.Equal(t, 0, m.TotalPens)
		assert.Equal(t, 0.0, m.TotalCapacity)
		assert.NotNil(t, m.PenMetrics)
		assert.Empty(t, m.PenMetrics)
		assert.NotNil(t, m.PensAtRisk)
		assert.Empty(t, m.PensAtRisk)
		assert.Nil(t, m.Critical.AvgDaysBetweenLastUseAndExpiry)
	})

	t.Run("mixed portfolio aggregates per-pen reports", func(t *testing.T) {
		pens := []model.Pen{
			{ID: "pen-a", Size: 10, ExpirationDate: day(2026, 2, 19)},
			{ID: "pen-b", Size: 5, ExpirationDate: day(2026, 6, 1)},
		}
		doses := []model.Dose{
			{ID: "d1", PenID: "pen-a", Date: day(2026, 1, 30), Mg: 35, IsCompleted: true},
			{ID: "d2", PenID: "pen-b", Date: day(2026, 2, 22), Mg: 5, IsCompleted: true},
		}

		m := svc.SystemMetrics(pens, doses, testNow)

		assert.Equal(t, 2, m.TotalPens)
		assert.Equal(t, 1, m.ActivePens)
		assert.Equal(t, 1, m.ExpiredPens)
		assert.Equal(t, 0, m.EmptyPens)

		assert.Equal(t, 75.0, m.TotalCapacity)
		assert.Equal(t, 40.0, m.TotalUsed)
		assert.Equal(t, 35.0, m.TotalRemaining)
		assert.Equal(t, 15.0, m.TotalWasted)
		assert.InDelta(t, 7.5, m.AverageWastePerPen, 1e-9)
		assert.InDelta(t, 40.0/75.0*100, m.AverageEfficiency, 1e-9)

		assert.Len(t, m.PenMetrics, 2)
		assert.Empty(t, m.PensAtRisk)

		require.NotNil(t, m.Critical.AvgDaysBetweenLastUseAndExpiry)
		assert.InDelta(t, 59.5, *m.Critical.AvgDaysBetweenLastUseAndExpiry, 1e-9)
		assert.Equal(t, 1, m.Critical.PensExpiredWithMedication)
		assert.Equal(t, 15.0, m.Critical.TotalMedicationWasted)
	})

	t.Run("doses referencing unknown pens change nothing", func(t *testing.T) {
		pens := []model.Pen{
			{ID: "pen-a", Size: 10, ExpirationDate: day(2026, 6, 1)},
		}
		doses := []model.Dose{
			{ID: "d1", PenID: "pen-a", Date: day(2026, 2, 1), Mg: 10, IsCompleted: true},
		}
		withGhost := append([]model.Dose{
			{ID: "dg", PenID: "ghost", Date: day(2026, 2, 1), Mg: 99, IsCompleted: true},
		}, doses...)

		assert.Equal(t, svc.SystemMetrics(pens, doses, testNow), svc.SystemMetrics(pens, withGhost, testNow))
	})

	t.Run("pens at risk collects every assessed pen", func(t *testing.T) {
		pens := []model.Pen{
			{ID: "pen-a", Size: 10, ExpirationDate: day(2026, 3, 11)},
			{ID: "pen-b", Size: 10, ExpirationDate: day(2026, 6, 1)},
		}
		doses := []model.Dose{
			{ID: "p1", PenID: "pen-a", Date: day(2026, 3, 16), Mg: 5, IsCompleted: false},
		}

		m := svc.SystemMetrics(pens, doses, testNow)

		require.Len(t, m.PensAtRisk, 1)
		assert.Equal(t, "pen-a", m.PensAtRisk[0].PenID)
		assert.Equal(t, model.RiskCritical, m.PensAtRisk[0].RiskLevel)
	})
}
