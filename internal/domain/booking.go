package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Active reports whether a booking in this status still reserves its room.
// Checked-out and cancelled bookings never constrain availability.
func (s BookingStatus) Active() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn:
		return true
	}
	return false
}

// Booking represents a stay of one room. It occupies every calendar night in
// [CheckIn, CheckOut) — the check-out night itself is free.
type Booking struct {
	ID         int           `json:"id"`
	Reference  string        `json:"reference"`
	PropertyID int           `json:"propertyId"`
	RoomID     int           `json:"roomId"`
	CheckIn    time.Time     `json:"checkIn"`
	CheckOut   time.Time     `json:"checkOut"`
	Status     BookingStatus `json:"status"`
	Price      float64       `json:"price"`
}

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// ListActiveBookings returns the active bookings of the property whose
	// stay interval overlaps [from, to)
	ListActiveBookings(propertyID int, from, to time.Time) ([]Booking, error)
	// GetBookingByID fetches a booking by its ID
	GetBookingByID(id int) (*Booking, error)
	// CreateBooking inserts the booking after re-checking the room for
	// conflicting active stays inside the same transaction. Returns
	// ErrRoomUnavailable when the room was taken in the meantime.
	CreateBooking(b *Booking) error
	// UpdateBookingStatus moves a booking to the given status
	UpdateBookingStatus(id int, status BookingStatus) error
	// UpdateExpiredBookings marks confirmed/checked-in bookings whose
	// check-out date has passed as checked out
	UpdateExpiredBookings() error
}
