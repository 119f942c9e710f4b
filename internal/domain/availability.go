package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange is returned when a requested date range has
	// check-out on or before check-in.
	ErrInvalidRange = errors.New("check-out must be after check-in")
	// ErrRepositoryUnavailable wraps any failure to read or write the
	// backing store.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	// ErrRoomUnavailable is returned by booking creation when the room has a
	// conflicting active booking at commit time.
	ErrRoomUnavailable = errors.New("room not available for the requested dates")
)

// CategoryOffer is one sellable result of an availability search. When the
// fallback policy substituted a category, the advertised ID/name are still the
// requested category's while price and rooms come from the substitute.
type CategoryOffer struct {
	CategoryID         int     `json:"categoryId"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	MaxGuests          int     `json:"maxGuests"`
	TotalPrice         float64 `json:"totalPrice"`
	SellableCount      int     `json:"sellableCount"`
	BreakfastAvailable bool    `json:"breakfastAvailable"`
	RoomIDs            []int   `json:"roomIds"`
}

// CalendarCell is one (date, category) cell of the staff rate calendar grid
type CalendarCell struct {
	Date            time.Time `json:"date"`
	CategoryID      int       `json:"categoryId"`
	Price           float64   `json:"price"`
	TotalSellable   int       `json:"totalSellable"`
	Booked          int       `json:"booked"`
	Available       int       `json:"available"`
	IsOverride      bool      `json:"isOverride"`
	IsClosed        bool      `json:"isClosed"`
	EnableBreakfast bool      `json:"enableBreakfast"`
}
