// Package model defines the core domain entities for the pen tracking service.
package model

import "time"

// DefaultPenSizes lists the nominal pen sizes (mg) the service accepts by default.
// These match the labeled strengths the pens are sold in.
var DefaultPenSizes = []float64{2.5, 5, 7.5, 10, 12.5, 15}

// Pen represents a single injector pen device.
//
// A pen is created by explicit user action and never edited in place; it is
// deleted only after all of its doses have been deleted.
//
// @Description Injector pen with a nominal size, purchase and expiration dates
type Pen struct {
	// ID is an opaque, immutable identifier.
	ID string `json:"id" bson:"_id,omitempty" example:"665f1c9e8b3e4a0001a1b2c3"`
	// Size is the nominal pen size in mg. One of the configured pen sizes.
	Size float64 `json:"size" bson:"size" example:"10"`
	// PurchaseDate is when the pen was acquired.
	PurchaseDate time.Time `json:"purchase_date" bson:"purchase_date"`
	// ExpirationDate is the labeled expiry of the pen.
	ExpirationDate time.Time `json:"expiration_date" bson:"expiration_date"`
	// Notes is free-form user text.
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
} // @name Pen

// ClickCapacity returns the dial-metered extractable mg of a pen size.
// The dial covers four times the labeled size.
func ClickCapacity(size float64) float64 { return size * 4 }

// TotalCapacity returns all extractable mg of a pen size, including the
// syringe-only residual.
func TotalCapacity(size float64) float64 { return size * 5 }

// SyringeCapacity returns the syringe-only residual mg of a pen size.
func SyringeCapacity(size float64) float64 { return size }

// ClickCapacity returns the dial-metered extractable mg of this pen.
func (p Pen) ClickCapacity() float64 { return ClickCapacity(p.Size) }

// TotalCapacity returns all extractable mg of this pen.
func (p Pen) TotalCapacity() float64 { return TotalCapacity(p.Size) }

// Availability describes how the remaining contents of a pen can be extracted.
//
// @Description Remaining extractable medication, split by extraction method
type Availability struct {
	// FromClicks is the mg still reachable through the dial.
	FromClicks float64 `json:"from_clicks" bson:"from_clicks" example:"5"`
	// FromSyringe is the mg only reachable by syringe draw.
	FromSyringe float64 `json:"from_syringe" bson:"from_syringe" example:"10"`
	// Total is FromClicks + FromSyringe.
	Total float64 `json:"total" bson:"total" example:"15"`
	// ClicksRemaining is FromClicks converted to physical dial clicks
	// (a full traversal is 60 clicks per labeled size).
	ClicksRemaining int `json:"clicks_remaining" bson:"clicks_remaining" example:"30"`
} // @name Availability
