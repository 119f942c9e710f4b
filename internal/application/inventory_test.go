package application

import (
	"testing"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestActiveCountOnNightContainment(t *testing.T) {
	cat := testCategory(1, "Singola", 1, 50)
	rooms := []domain.Room{testRoom(1, "101", cat)}
	idx := newBookingIndex([]domain.Booking{
		testBooking(1, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingConfirmed),
	})

	// occupies the nights of June 1 and 2, not the check-out night
	assert.Equal(t, 1, idx.ActiveCountOn(rooms, day(2024, time.June, 1)))
	assert.Equal(t, 1, idx.ActiveCountOn(rooms, day(2024, time.June, 2)))
	assert.Equal(t, 0, idx.ActiveCountOn(rooms, day(2024, time.June, 3)))
	assert.Equal(t, 0, idx.ActiveCountOn(rooms, day(2024, time.May, 31)))
}

func TestActiveCountOnIgnoresInactiveStatuses(t *testing.T) {
	cat := testCategory(1, "Singola", 1, 50)
	rooms := []domain.Room{testRoom(1, "101", cat), testRoom(2, "102", cat)}
	idx := newBookingIndex([]domain.Booking{
		testBooking(1, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingCancelled),
		testBooking(2, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingCheckedOut),
	})

	assert.Equal(t, 0, idx.ActiveCountOn(rooms, day(2024, time.June, 1)))
}

func TestActiveCountOnCountsEveryActiveStatus(t *testing.T) {
	cat := testCategory(1, "Singola", 1, 50)
	rooms := []domain.Room{
		testRoom(1, "101", cat),
		testRoom(2, "102", cat),
		testRoom(3, "103", cat),
	}
	idx := newBookingIndex([]domain.Booking{
		testBooking(1, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingPending),
		testBooking(2, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingConfirmed),
		testBooking(3, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingCheckedIn),
	})

	assert.Equal(t, 3, idx.ActiveCountOn(rooms, day(2024, time.June, 2)))
}

func TestFreeForStayHalfOpenIntervals(t *testing.T) {
	idx := newBookingIndex([]domain.Booking{
		testBooking(1, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingConfirmed),
	})

	// check-out day is free for a new check-in
	assert.True(t, idx.FreeForStay(1, day(2024, time.June, 3), day(2024, time.June, 5)))
	// a stay ending on the booking's check-in does not collide
	assert.True(t, idx.FreeForStay(1, day(2024, time.May, 30), day(2024, time.June, 1)))
	// any shared night collides
	assert.False(t, idx.FreeForStay(1, day(2024, time.June, 2), day(2024, time.June, 4)))
	assert.False(t, idx.FreeForStay(1, day(2024, time.May, 30), day(2024, time.June, 2)))
}

func TestAssignableRoomsAllNights(t *testing.T) {
	cat := testCategory(1, "Singola", 1, 50)
	roomA := testRoom(1, "101", cat)
	roomB := testRoom(2, "102", cat)
	idx := newBookingIndex([]domain.Booking{
		testBooking(1, day(2024, time.June, 1), day(2024, time.June, 3), domain.BookingConfirmed),
	})

	free := assignableRooms([]domain.Room{roomA, roomB}, idx, day(2024, time.June, 1), day(2024, time.June, 3))

	if assert.Len(t, free, 1) {
		assert.Equal(t, roomB.ID, free[0].ID)
	}
}

func TestAssignableRoomsKeepsRankOrder(t *testing.T) {
	cat := testCategory(1, "Singola", 1, 50)
	ranked := []domain.Room{
		testRoom(3, "103", cat),
		testRoom(1, "101", cat),
		testRoom(2, "102", cat),
	}
	idx := newBookingIndex(nil)

	free := assignableRooms(ranked, idx, day(2024, time.June, 1), day(2024, time.June, 2))

	assert.Equal(t, []int{3, 1, 2}, []int{free[0].ID, free[1].ID, free[2].ID})
}
