package service

import (
	"math"
	"time"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// DefaultExpiringSoonDays is the window within which a pen counts as expiring soon.
const DefaultExpiringSoonDays = 14

// MetricsCalculator derives per-pen and portfolio-wide analytics from a
// snapshot of pens and doses. Implementations are stateless: every call is a
// pure function of its arguments, and `now` is passed in so a whole report is
// computed against a single instant.
type MetricsCalculator interface {
	PenMetrics(pen model.Pen, doses []model.Dose, usage map[string]float64, now time.Time) model.PenMetric
	SystemMetrics(pens []model.Pen, doses []model.Dose, now time.Time) model.SystemMetrics
}

// MetricsOption configures a MetricsCalculatorService.
type MetricsOption func(*MetricsCalculatorService)

// MetricsCalculatorService implements MetricsCalculator.
type MetricsCalculatorService struct {
	expiringSoonDays int
}

// NewMetricsCalculatorService creates a MetricsCalculatorService with the given options.
func NewMetricsCalculatorService(opts ...MetricsOption) *MetricsCalculatorService {
	s := &MetricsCalculatorService{expiringSoonDays: DefaultExpiringSoonDays}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithExpiringSoonWindow sets how many days before expiry a pen is flagged
// as expiring soon.
func WithExpiringSoonWindow(days int) MetricsOption {
	return func(s *MetricsCalculatorService) {
		if days > 0 {
			s.expiringSoonDays = days
		}
	}
}

// PenMetrics computes the full derived report for one pen. The usage map is
// the pooled per-pen totals from PenUsage; doses may span the whole portfolio
// and are filtered to the pen here.
func (s *MetricsCalculatorService) PenMetrics(pen model.Pen, doses []model.Dose, usage map[string]float64, now time.Time) model.PenMetric {
	used := usage[pen.ID]
	availability := Availability(pen.Size, used)
	totalCapacity := model.TotalCapacity(pen.Size)

	today := startOfDay(now)
	expiry := startOfDay(pen.ExpirationDate)

	var completed, planned []model.Dose
	for _, d := range doses {
		if d.PenID != pen.ID {
			continue
		}
		if d.IsCompleted {
			completed = append(completed, d)
		} else {
			planned = append(planned, d)
		}
	}
	sortDosesByDate(completed)
	sortDosesByDate(planned)

	daysUntilExpiry := daysBetween(today, expiry)
	isExpired := daysUntilExpiry < 0
	isExpiringSoon := !isExpired && daysUntilExpiry <= s.expiringSoonDays
	isEmpty := deci(availability.Total) == 0

	var lastUseDate *time.Time
	var daysBetweenLastUseAndExpiry *int
	if len(completed) > 0 {
		last := startOfDay(completed[len(completed)-1].Date)
		gap := daysBetween(last, expiry)
		lastUseDate = &last
		daysBetweenLastUseAndExpiry = &gap
	}

	var wastedMg, wastePercentage float64
	if isExpired {
		wastedMg = availability.Total
		wastePercentage = wastedMg / totalCapacity * 100
	}

	risk := model.RiskAssessment{Kind: model.RiskKindNone, Level: model.RiskNone}
	switch {
	case len(planned) > 0:
		risk = s.assessPlanned(planned, completed, availability, totalCapacity, expiry)
	case !isExpired && !isEmpty && len(completed) >= 2:
		risk = assessHistorical(completed, availability, daysUntilExpiry)
	}

	return model.PenMetric{
		PenID:           pen.ID,
		PenSize:         pen.Size,
		TotalCapacity:   totalCapacity,
		Usage:           used,
		Remaining:       availability.Total,
		UsageEfficiency: used / totalCapacity * 100,
		Availability:    availability,

		DaysUntilExpiry: daysUntilExpiry,
		IsExpired:       isExpired,
		IsExpiringSoon:  isExpiringSoon,
		IsEmpty:         isEmpty,

		LastUseDate:                 lastUseDate,
		DaysBetweenLastUseAndExpiry: daysBetweenLastUseAndExpiry,

		WastedMg:        wastedMg,
		WastePercentage: wastePercentage,

		DoseCount:          len(completed) + len(planned),
		CompletedDoseCount: len(completed),
		PlannedDoseCount:   len(planned),
		HasPlannedDoses:    len(planned) > 0,

		RiskLevel: risk.Level,
		Risk:      risk,
	}
}

// assessPlanned walks the planned schedule in date order, advancing through
// doses that both fall on or before expiry and still fit in the pen. Doses
// that do not advance are skipped, not aborted on, so a later smaller dose
// can still be taken.
func (s *MetricsCalculatorService) assessPlanned(planned, completed []model.Dose, availability model.Availability, totalCapacity float64, expiry time.Time) model.RiskAssessment {
	proj := model.PlannedProjection{
		WasteMg:          availability.Total,
		DosesAfterExpiry: []model.PlannedDoseOverrun{},
	}
	level := model.RiskNone

	var cumulativeUsed float64
	for _, d := range completed {
		cumulativeUsed += d.Mg
	}

	var lastValid *time.Time
	for _, d := range planned {
		doseDate := startOfDay(d.Date)
		currentRemaining := round1(totalCapacity - cumulativeUsed)
		wouldRemain := round1(currentRemaining - d.Mg)

		if doseDate.After(expiry) {
			proj.DosesAfterExpiry = append(proj.DosesAfterExpiry, model.PlannedDoseOverrun{
				DoseID:          d.ID,
				Date:            d.Date,
				Mg:              d.Mg,
				DaysAfterExpiry: daysBetween(expiry, doseDate),
			})
		}

		if deci(d.Mg) > deci(currentRemaining) {
			proj.WillRunOutBeforeComplete = true
		}

		if !doseDate.After(expiry) && deci(wouldRemain) >= 0 {
			dd := doseDate
			lastValid = &dd
			cumulativeUsed = round1(cumulativeUsed + d.Mg)
		}
	}

	if lastValid == nil {
		// No planned dose can be taken at all.
		return model.RiskAssessment{Kind: model.RiskKindPlanned, Level: model.RiskCritical, Planned: &proj}
	}

	gap := daysBetween(*lastValid, expiry)
	proj.LastDoseDate = lastValid
	proj.DaysBeforeExpiry = &gap
	proj.WasteMg = math.Max(0, round1(totalCapacity-cumulativeUsed))

	switch {
	case gap > 30:
		level = model.RiskLow
	case gap > 14:
		level = model.RiskMedium
	case gap > 7:
		level = model.RiskHigh
	default:
		level = model.RiskCritical
	}

	return model.RiskAssessment{Kind: model.RiskKindPlanned, Level: level, Planned: &proj}
}

// assessHistorical extrapolates the cadence of completed doses. completed is
// sorted by date and has at least two entries.
func assessHistorical(completed []model.Dose, availability model.Availability, daysUntilExpiry int) model.RiskAssessment {
	var totalGaps float64
	for i := 1; i < len(completed); i++ {
		totalGaps += float64(daysBetweenAbs(completed[i-1].Date, completed[i].Date))
	}
	avgGap := totalGaps / float64(len(completed)-1)

	var totalMg float64
	for _, d := range completed {
		totalMg += d.Mg
	}
	avgDose := totalMg / float64(len(completed))

	estimated := math.Floor(availability.Total/avgDose) * avgGap

	level := model.RiskNone
	if estimated > float64(daysUntilExpiry) {
		over := estimated - float64(daysUntilExpiry)
		switch {
		case over > 14:
			level = model.RiskHigh
		case over > 7:
			level = model.RiskMedium
		default:
			level = model.RiskLow
		}
	}

	return model.RiskAssessment{
		Kind:  model.RiskKindHistorical,
		Level: level,
		Historical: &model.HistoricalProjection{
			EstimatedDaysToEmpty: estimated,
			AvgDoseMg:            avgDose,
			AvgDaysBetweenDoses:  avgGap,
		},
	}
}

// SystemMetrics reduces every pen's report into portfolio totals. A portfolio
// with no pens short-circuits to the all-zero report regardless of doses.
func (s *MetricsCalculatorService) SystemMetrics(pens []model.Pen, doses []model.Dose, now time.Time) model.SystemMetrics {
	if len(pens) == 0 {
		return model.EmptySystemMetrics()
	}

	usage := PenUsage(doses)

	penMetrics := make([]model.PenMetric, 0, len(pens))
	for _, pen := range pens {
		penMetrics = append(penMetrics, s.PenMetrics(pen, doses, usage, now))
	}

	result := model.SystemMetrics{
		TotalPens:  len(pens),
		PenMetrics: penMetrics,
		PensAtRisk: []model.PenMetric{},
	}

	var lastUseSum float64
	var lastUseCount int
	for _, m := range penMetrics {
		// The three tallies overlap: an expired pen that is also empty counts
		// in both, active means neither.
		if m.IsExpired {
			result.ExpiredPens++
		}
		if m.IsEmpty {
			result.EmptyPens++
		}
		if !m.IsExpired && !m.IsEmpty {
			result.ActivePens++
		}

		result.TotalCapacity += m.TotalCapacity
		result.TotalUsed += m.Usage
		result.TotalRemaining += m.Remaining
		result.TotalWasted += m.WastedMg

		if m.RiskLevel != model.RiskNone {
			result.PensAtRisk = append(result.PensAtRisk, m)
		}
		if m.DaysBetweenLastUseAndExpiry != nil {
			lastUseSum += float64(*m.DaysBetweenLastUseAndExpiry)
			lastUseCount++
		}
	}

	result.AverageWastePerPen = result.TotalWasted / float64(result.TotalPens)
	result.AverageEfficiency = result.TotalUsed / result.TotalCapacity * 100

	result.Critical = model.CriticalMetrics{
		TotalMedicationWasted: result.TotalWasted,
	}
	if lastUseCount > 0 {
		avg := lastUseSum / float64(lastUseCount)
		result.Critical.AvgDaysBetweenLastUseAndExpiry = &avg
	}
	for _, m := range penMetrics {
		if m.IsExpired && m.WastedMg > 0 {
			result.Critical.PensExpiredWithMedication++
		}
	}

	return result
}
