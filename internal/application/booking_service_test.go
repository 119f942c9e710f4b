package application

import (
	"testing"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingDefaults(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo)

	b := &domain.Booking{
		PropertyID: 1,
		RoomID:     1,
		CheckIn:    time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, time.June, 3, 11, 0, 0, 0, time.UTC),
		Price:      100,
	}
	err := svc.Create(b)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotEmpty(t, b.Reference)
	// house-rule times are dropped before storage
	assert.Equal(t, day(2024, time.June, 1), b.CheckIn)
	assert.Equal(t, day(2024, time.June, 3), b.CheckOut)
	assert.Len(t, repo.created, 1)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{})

	err := svc.Create(&domain.Booking{PropertyID: 1, CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 2), Price: 100})
	assert.Error(t, err) // no room

	err = svc.Create(&domain.Booking{PropertyID: 1, RoomID: 1, CheckIn: day(2024, time.June, 2), CheckOut: day(2024, time.June, 2), Price: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	err = svc.Create(&domain.Booking{PropertyID: 1, RoomID: 1, CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 2)})
	assert.Error(t, err) // missing price

	err = svc.Create(&domain.Booking{PropertyID: 1, RoomID: 1, CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 2), Price: 100, Status: domain.BookingCheckedIn})
	assert.Error(t, err) // cannot start mid-lifecycle
}

func TestCreateBookingConflictPassthrough(t *testing.T) {
	repo := &fakeBookingRepo{createErr: domain.ErrRoomUnavailable}
	svc := NewBookingService(repo)

	err := svc.Create(&domain.Booking{PropertyID: 1, RoomID: 1, CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 2), Price: 100})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingTransitions(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: 1, Status: domain.BookingPending},
		{ID: 2, Status: domain.BookingConfirmed},
		{ID: 3, Status: domain.BookingCheckedOut},
	}}
	svc := NewBookingService(repo)

	require.NoError(t, svc.Confirm(1))
	assert.Equal(t, domain.BookingConfirmed, repo.statusByID[1])

	require.NoError(t, svc.CheckIn(2))
	assert.Equal(t, domain.BookingCheckedIn, repo.statusByID[2])

	// a checked-out stay cannot be cancelled or confirmed
	assert.Error(t, svc.Cancel(3))
	assert.Error(t, svc.Confirm(3))

	// cancelling an active stay works from any active status
	require.NoError(t, svc.Cancel(2))
	assert.Equal(t, domain.BookingCancelled, repo.statusByID[2])
}
