package model

import "time"

// Dose represents a single injection, either planned or completed.
//
// A dose may be created directly as completed, transition planned to
// completed, or be edited (pen, date, mg, completion flag) preserving its
// identity. Planned doses reserve pen capacity exactly like completed ones.
//
// @Description A planned or completed injection against a pen
type Dose struct {
	// ID is an opaque identifier.
	ID string `json:"id" bson:"_id,omitempty" example:"665f1d238b3e4a0001a1b2c4"`
	// PenID references the pen the dose is drawn from.
	PenID string `json:"pen_id" bson:"pen_id" example:"665f1c9e8b3e4a0001a1b2c3"`
	// Date is when the dose was (or will be) administered.
	Date time.Time `json:"date" bson:"date"`
	// Mg is the dose amount in mg. Always positive.
	Mg float64 `json:"mg" bson:"mg" example:"5"`
	// IsCompleted is false for planned doses.
	IsCompleted bool `json:"is_completed" bson:"is_completed"`
} // @name Dose

// DoseBreakdown splits a dose into its dial-metered and syringe-drawn parts.
//
// @Description How a dose would be extracted from a pen given prior usage
type DoseBreakdown struct {
	// FromClicks is the mg dialed through the click mechanism.
	FromClicks float64 `json:"from_clicks" example:"5"`
	// FromSyringe is the mg drawn with a syringe.
	FromSyringe float64 `json:"from_syringe" example:"3"`
	// ClickCount is FromClicks expressed as physical dial clicks.
	ClickCount int `json:"click_count" example:"30"`
	// RequiresSyringe is true when any part of the dose needs a syringe draw.
	RequiresSyringe bool `json:"requires_syringe" example:"true"`
} // @name DoseBreakdown

// ConcentrationPoint is one sample of the modeled body concentration curve.
//
// @Description Daily concentration sample, actual and with planned doses included
type ConcentrationPoint struct {
	// Date is the sampled day.
	Date time.Time `json:"date"`
	// Actual is the concentration from completed doses only.
	Actual float64 `json:"actual" example:"2.5"`
	// Projected additionally includes planned doses.
	Projected float64 `json:"projected" example:"4.1"`
} // @name ConcentrationPoint
