package application

import (
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// bookingIndex holds the active bookings of a search window grouped by room,
// so per-night counts and per-stay overlap checks run in memory instead of
// re-querying the store for every night.
type bookingIndex struct {
	byRoom map[int][]domain.Booking
}

func newBookingIndex(bookings []domain.Booking) *bookingIndex {
	idx := &bookingIndex{byRoom: make(map[int][]domain.Booking)}
	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		idx.byRoom[b.RoomID] = append(idx.byRoom[b.RoomID], b)
	}
	return idx
}

// ActiveCountOn counts active bookings occupying any of the given rooms on
// one night. A booking occupies the nights [CheckIn, CheckOut).
func (idx *bookingIndex) ActiveCountOn(rooms []domain.Room, night time.Time) int {
	count := 0
	for _, room := range rooms {
		for _, b := range idx.byRoom[room.ID] {
			if !b.CheckIn.After(night) && b.CheckOut.After(night) {
				count++
			}
		}
	}
	return count
}

// FreeForStay reports whether the room has no active booking overlapping any
// night of [checkIn, checkOut). Half-open intervals: a booking checking out
// on checkIn does not block the stay.
func (idx *bookingIndex) FreeForStay(roomID int, checkIn, checkOut time.Time) bool {
	for _, b := range idx.byRoom[roomID] {
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			return false
		}
	}
	return true
}
