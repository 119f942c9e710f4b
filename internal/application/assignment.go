package application

import (
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// assignableRooms returns, in rank order, every room that is free for the
// whole stay. This is stricter than the per-night inventory count: a room
// qualifies only with zero overlapping active bookings across all nights.
// Callers take the first N they need.
func assignableRooms(ranked []domain.Room, bookings *bookingIndex, checkIn, checkOut time.Time) []domain.Room {
	var free []domain.Room
	for _, room := range ranked {
		if bookings.FreeForStay(room.ID, checkIn, checkOut) {
			free = append(free, room)
		}
	}
	return free
}
