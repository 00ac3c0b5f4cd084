// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"time"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreatePenRequest represents the JSON request body for creating a pen.
//
// @Description Request to register a new pen
// @Example {"size": 10, "purchase_date": "2026-01-05T00:00:00Z", "expiration_date": "2026-04-05T00:00:00Z"}
type CreatePenRequest struct {
	// Size is the nominal pen size in mg. Must be one of the configured sizes.
	Size float64 `json:"size" binding:"required,gt=0" example:"10"`
	// PurchaseDate is when the pen was acquired.
	PurchaseDate time.Time `json:"purchase_date" binding:"required"`
	// ExpirationDate is the labeled expiry of the pen.
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty" example:"fridge, bottom shelf"`
} // @name CreatePenRequest

// Validate performs custom validation on the request.
func (r *CreatePenRequest) Validate() error {
	if r.Size <= 0 {
		return &ValidationError{Field: "size", Message: "must be a positive number"}
	}
	if r.ExpirationDate.Before(r.PurchaseDate) {
		return &ValidationError{Field: "expiration_date", Message: "must not precede purchase_date"}
	}
	return nil
}

// CreateDoseRequest represents the JSON request body for recording a dose.
//
// @Description Request to record a planned or completed dose
// @Example {"pen_id": "665f1c9e8b3e4a0001a1b2c3", "date": "2026-02-01T00:00:00Z", "mg": 5, "is_completed": true}
type CreateDoseRequest struct {
	// PenID references the pen the dose is drawn from.
	PenID string `json:"pen_id" binding:"required" example:"665f1c9e8b3e4a0001a1b2c3"`
	// Date is when the dose was (or will be) administered.
	Date time.Time `json:"date" binding:"required"`
	// Mg is the dose amount in mg.
	Mg float64 `json:"mg" binding:"required,gt=0" example:"5"`
	// IsCompleted is false for planned doses.
	IsCompleted bool `json:"is_completed"`
} // @name CreateDoseRequest

// Validate performs custom validation on the request.
func (r *CreateDoseRequest) Validate() error {
	if r.PenID == "" {
		return &ValidationError{Field: "pen_id", Message: "pen_id is required"}
	}
	if r.Mg <= 0 {
		return &ValidationError{Field: "mg", Message: "must be a positive number"}
	}
	return nil
}

// UpdateDoseRequest represents the JSON request body for editing a dose.
// Zero-value fields are left unchanged; IsCompleted uses a pointer so that
// marking a dose back to planned is expressible.
//
// @Description Request to edit an existing dose
type UpdateDoseRequest struct {
	PenID       string     `json:"pen_id,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Mg          *float64   `json:"mg,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
} // @name UpdateDoseRequest

// Validate performs custom validation on the request.
func (r *UpdateDoseRequest) Validate() error {
	if r.Mg != nil && *r.Mg <= 0 {
		return &ValidationError{Field: "mg", Message: "must be a positive number"}
	}
	return nil
}

// BreakdownRequest represents the JSON request body for the dose breakdown
// preview endpoint. It is fully self-contained: nothing is read from storage.
//
// @Description Request to preview how a dose splits into clicks and syringe draw
// @Example {"pen_size": 10, "used_before": 35, "dose_mg": 10}
type BreakdownRequest struct {
	// PenSize is the nominal pen size in mg.
	PenSize float64 `json:"pen_size" binding:"required,gt=0" example:"10"`
	// UsedBefore is the mg already recorded against the pen.
	UsedBefore float64 `json:"used_before" binding:"gte=0" example:"35"`
	// DoseMg is the dose amount to split.
	DoseMg float64 `json:"dose_mg" binding:"required,gt=0" example:"10"`
} // @name BreakdownRequest

// Validate performs custom validation on the request.
func (r *BreakdownRequest) Validate() error {
	if r.PenSize <= 0 {
		return &ValidationError{Field: "pen_size", Message: "must be a positive number"}
	}
	if r.UsedBefore < 0 {
		return &ValidationError{Field: "used_before", Message: "must not be negative"}
	}
	if r.DoseMg <= 0 {
		return &ValidationError{Field: "dose_mg", Message: "must be a positive number"}
	}
	return nil
}

// PreviewRequest represents the JSON request body for the stateless analytics
// endpoint: the caller supplies the whole portfolio inline and gets the same
// report the stored endpoints produce.
//
// @Description Request to compute portfolio metrics over an inline snapshot
type PreviewRequest struct {
	// Pens is the portfolio to analyze.
	Pens []model.Pen `json:"pens" binding:"required"`
	// Doses is the dose history, completed and planned.
	Doses []model.Dose `json:"doses"`
	// Now optionally fixes the reference instant; defaults to the server clock.
	Now *time.Time `json:"now,omitempty"`
} // @name PreviewRequest

// UpdatePenSizesRequest represents the JSON request body for replacing the
// pen size catalog.
//
// @Description Request to replace the configured pen size catalog
// @Example {"sizes": [2.5, 5, 7.5, 10, 12.5, 15]}
type UpdatePenSizesRequest struct {
	// Sizes is the full replacement catalog in mg.
	Sizes []float64 `json:"sizes" binding:"required"`
	// CreatedBy records who made the change.
	CreatedBy string `json:"created_by,omitempty" example:"admin"`
} // @name UpdatePenSizesRequest

// CreateWeightRequest represents the JSON request body for logging a weight.
//
// @Description Request to log a body weight entry
// @Example {"date": "2026-02-01T00:00:00Z", "weight_kg": 92.4}
type CreateWeightRequest struct {
	Date time.Time `json:"date" binding:"required"`
	// WeightKg is the measured body weight in kilograms.
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0" example:"92.4"`
	Notes    string  `json:"notes,omitempty"`
} // @name CreateWeightRequest

// Validate performs custom validation on the request.
func (r *CreateWeightRequest) Validate() error {
	if r.WeightKg <= 0 {
		return &ValidationError{Field: "weight_kg", Message: "must be a positive number"}
	}
	return nil
}
