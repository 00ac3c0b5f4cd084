package model

import "time"

// RiskLevel classifies the danger that a pen's medication is wasted at expiry
// or exhausted before a planned schedule completes.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskKind identifies which projection produced a risk assessment.
type RiskKind string

const (
	// RiskKindNone means no assessment was possible (no usable dose history).
	RiskKindNone RiskKind = "none"
	// RiskKindHistorical means the assessment extrapolates completed-dose cadence.
	RiskKindHistorical RiskKind = "historical"
	// RiskKindPlanned means the assessment simulated the planned schedule.
	RiskKindPlanned RiskKind = "planned"
)

// PlannedDoseOverrun records a planned dose scheduled after the pen expires.
//
// @Description A planned dose falling after the pen's expiration date
type PlannedDoseOverrun struct {
	DoseID string    `json:"dose_id" bson:"dose_id"`
	Date   time.Time `json:"date" bson:"date"`
	Mg     float64   `json:"mg" bson:"mg"`
	// DaysAfterExpiry is how many days past expiry the dose is scheduled.
	DaysAfterExpiry int `json:"days_after_expiry" bson:"days_after_expiry"`
} // @name PlannedDoseOverrun

// PlannedProjection is the outcome of simulating the planned schedule
// against the pen's remaining capacity and expiry date.
//
// @Description Forward simulation of planned doses against capacity and expiry
type PlannedProjection struct {
	// LastDoseDate is the date of the last planned dose that fit before expiry,
	// or nil when no planned dose could be taken.
	LastDoseDate *time.Time `json:"last_dose_date,omitempty" bson:"last_dose_date,omitempty"`
	// DaysBeforeExpiry is the gap between LastDoseDate and expiry.
	DaysBeforeExpiry *int `json:"days_before_expiry,omitempty" bson:"days_before_expiry,omitempty"`
	// WasteMg is the medication projected to remain unused at expiry.
	WasteMg float64 `json:"waste_mg" bson:"waste_mg"`
	// DosesAfterExpiry lists planned doses scheduled past the expiration date.
	DosesAfterExpiry []PlannedDoseOverrun `json:"doses_after_expiry" bson:"doses_after_expiry"`
	// WillRunOutBeforeComplete is true when some planned dose exceeds what is
	// left in the pen at that point of the schedule. Sticky: the first
	// occurrence sets it and it is never reset.
	WillRunOutBeforeComplete bool `json:"will_run_out_before_complete" bson:"will_run_out_before_complete"`
} // @name PlannedProjection

// HistoricalProjection extrapolates the completed-dose cadence to estimate
// when the pen will run empty.
//
// @Description Cadence-based estimate of days until the pen is empty
type HistoricalProjection struct {
	EstimatedDaysToEmpty float64 `json:"estimated_days_to_empty" bson:"estimated_days_to_empty"`
	AvgDoseMg            float64 `json:"avg_dose_mg" bson:"avg_dose_mg"`
	AvgDaysBetweenDoses  float64 `json:"avg_days_between_doses" bson:"avg_days_between_doses"`
} // @name HistoricalProjection

// RiskAssessment is a tagged result: exactly one of Planned or Historical is
// set according to Kind, or neither when Kind is RiskKindNone.
//
// @Description Risk classification with the projection that produced it
type RiskAssessment struct {
	Kind       RiskKind              `json:"kind" bson:"kind" example:"planned"`
	Level      RiskLevel             `json:"level" bson:"level" example:"critical"`
	Planned    *PlannedProjection    `json:"planned,omitempty" bson:"planned,omitempty"`
	Historical *HistoricalProjection `json:"historical,omitempty" bson:"historical,omitempty"`
} // @name RiskAssessment

// PenMetric is the full derived report for one pen. It is recomputed on every
// call and never stored as a source of truth; the snapshot store persists
// copies keyed by (user, pen, date).
//
// @Description Derived per-pen metrics including availability and risk
type PenMetric struct {
	PenID         string  `json:"pen_id" bson:"pen_id"`
	PenSize       float64 `json:"pen_size" bson:"pen_size"`
	TotalCapacity float64 `json:"total_capacity" bson:"total_capacity"`
	// Usage is the cumulative mg of all doses, completed and planned.
	Usage     float64 `json:"usage" bson:"usage"`
	Remaining float64 `json:"remaining" bson:"remaining"`
	// UsageEfficiency is Usage / TotalCapacity as a percentage.
	UsageEfficiency float64      `json:"usage_efficiency" bson:"usage_efficiency"`
	Availability    Availability `json:"availability" bson:"availability"`

	DaysUntilExpiry int  `json:"days_until_expiry" bson:"days_until_expiry"`
	IsExpired       bool `json:"is_expired" bson:"is_expired"`
	IsExpiringSoon  bool `json:"is_expiring_soon" bson:"is_expiring_soon"`
	IsEmpty         bool `json:"is_empty" bson:"is_empty"`

	// LastUseDate is the most recent completed dose's date, nil when the pen
	// has never been used.
	LastUseDate *time.Time `json:"last_use_date,omitempty" bson:"last_use_date,omitempty"`
	// DaysBetweenLastUseAndExpiry is the headline metric: how far the last
	// real injection fell from the expiry date.
	DaysBetweenLastUseAndExpiry *int `json:"days_between_last_use_and_expiry,omitempty" bson:"days_between_last_use_and_expiry,omitempty"`

	WastedMg        float64 `json:"wasted_mg" bson:"wasted_mg"`
	WastePercentage float64 `json:"waste_percentage" bson:"waste_percentage"`

	DoseCount          int  `json:"dose_count" bson:"dose_count"`
	CompletedDoseCount int  `json:"completed_dose_count" bson:"completed_dose_count"`
	PlannedDoseCount   int  `json:"planned_dose_count" bson:"planned_dose_count"`
	HasPlannedDoses    bool `json:"has_planned_doses" bson:"has_planned_doses"`

	RiskLevel RiskLevel      `json:"risk_level" bson:"risk_level"`
	Risk      RiskAssessment `json:"risk" bson:"risk"`
} // @name PenMetric

// CriticalMetrics are the portfolio-wide waste indicators.
//
// @Description Portfolio waste indicators
type CriticalMetrics struct {
	// AvgDaysBetweenLastUseAndExpiry averages the headline metric across pens
	// where it is defined; nil when no pen has a completed dose.
	AvgDaysBetweenLastUseAndExpiry *float64 `json:"avg_days_between_last_use_and_expiry,omitempty" bson:"avg_days_between_last_use_and_expiry,omitempty"`
	// PensExpiredWithMedication counts pens that expired still holding unused medication.
	PensExpiredWithMedication int `json:"pens_expired_with_medication" bson:"pens_expired_with_medication"`
	// TotalMedicationWasted is the total mg lost to expiry.
	TotalMedicationWasted float64 `json:"total_medication_wasted" bson:"total_medication_wasted"`
} // @name CriticalMetrics

// SystemMetrics reduces every pen's metrics into portfolio totals.
//
// @Description Portfolio-wide derived metrics
type SystemMetrics struct {
	TotalPens   int `json:"total_pens" bson:"total_pens"`
	ActivePens  int `json:"active_pens" bson:"active_pens"`
	ExpiredPens int `json:"expired_pens" bson:"expired_pens"`
	EmptyPens   int `json:"empty_pens" bson:"empty_pens"`

	TotalCapacity  float64 `json:"total_capacity" bson:"total_capacity"`
	TotalUsed      float64 `json:"total_used" bson:"total_used"`
	TotalRemaining float64 `json:"total_remaining" bson:"total_remaining"`
	TotalWasted    float64 `json:"total_wasted" bson:"total_wasted"`

	AverageWastePerPen float64 `json:"average_waste_per_pen" bson:"average_waste_per_pen"`
	AverageEfficiency  float64 `json:"average_efficiency" bson:"average_efficiency"`

	PenMetrics []PenMetric `json:"pen_metrics" bson:"pen_metrics"`
	PensAtRisk []PenMetric `json:"pens_at_risk" bson:"pens_at_risk"`

	Critical CriticalMetrics `json:"critical_metrics" bson:"critical_metrics"`
} // @name SystemMetrics

// EmptySystemMetrics returns the all-zero report for a portfolio with no pens.
func EmptySystemMetrics() SystemMetrics {
	return SystemMetrics{
		PenMetrics: []PenMetric{},
		PensAtRisk: []PenMetric{},
	}
}
