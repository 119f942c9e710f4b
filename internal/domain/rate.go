package domain

import "time"

// RateOverride is the single per-day exception row for a (property, category,
// date) key. Available distinguishes three states: nil means no cap beyond
// the physical room count, zero means explicitly nothing sellable, a positive
// value is an explicit cap.
type RateOverride struct {
	PropertyID      int       `json:"propertyId"`
	CategoryID      int       `json:"categoryId"`
	Date            time.Time `json:"date"`
	Price           float64   `json:"price"`
	Available       *int      `json:"available"`
	IsClosed        bool      `json:"isClosed"`
	EnableBreakfast bool      `json:"enableBreakfast"`
}

// DayRate is the effective state of a category for one night, after layering
// any override on top of the category defaults.
type DayRate struct {
	Price           float64 `json:"price"`
	IsClosed        bool    `json:"isClosed"`
	EnableBreakfast bool    `json:"enableBreakfast"`
	Available       *int    `json:"available"`
	IsOverride      bool    `json:"isOverride"`
}

// RateRepository defines the interface for rate override data operations
type RateRepository interface {
	// ListOverrides returns the overrides of the property whose date falls in
	// [from, to)
	ListOverrides(propertyID int, from, to time.Time) ([]RateOverride, error)
	// UpsertOverride inserts or replaces the override for its
	// (property, category, date) key
	UpsertOverride(o RateOverride) error
	// DeleteOverride removes the override for the given key if present
	DeleteOverride(propertyID, categoryID int, date time.Time) error
}
