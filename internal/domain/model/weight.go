package model

import "time"

// Weight is a single body-weight log entry.
//
// @Description Body weight entry
type Weight struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	Date     time.Time `json:"date" bson:"date"`
	WeightKg float64   `json:"weight_kg" bson:"weight_kg" example:"92.4"`
	Notes    string    `json:"notes,omitempty" bson:"notes,omitempty"`
} // @name Weight

// WeightStats summarizes a weight history from its first to its latest entry.
//
// @Description Weight change summary
type WeightStats struct {
	StartWeightKg   float64 `json:"start_weight_kg"`
	CurrentWeightKg float64 `json:"current_weight_kg"`
	TotalChangeKg   float64 `json:"total_change_kg"`
	// DaySpan is the number of days between the first and latest entries.
	DaySpan int `json:"day_span"`
} // @name WeightStats
