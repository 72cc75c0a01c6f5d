// Package types provides type definitions for structured data used throughout the junie system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// UserProfile is the onboarding profile the recommendation engine scores against.
// It is created and updated by the onboarding flow; the engine only reads it.
type UserProfile struct {
	Sparks []string `json:"sparks" validate:"required,min=1,dive,min=1"`
	Values []string `json:"values" validate:"required,min=1,dive,min=1"`
	Dream  string   `json:"dream" validate:"required,min=20"`
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// FirstSpark returns the user's first spark, or the fallback if none exists.
func (p *UserProfile) FirstSpark(fallback string) string {
	if len(p.Sparks) > 0 && p.Sparks[0] != "" {
		return p.Sparks[0]
	}
	return fallback
}

// FirstValue returns the user's first value, or the fallback if none exists.
func (p *UserProfile) FirstValue(fallback string) string {
	if len(p.Values) > 0 && p.Values[0] != "" {
		return p.Values[0]
	}
	return fallback
}
