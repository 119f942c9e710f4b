package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// BookingService creates bookings and moves them through their lifecycle.
// The availability engine reports a best-effort snapshot; the repository
// re-checks the room for conflicts atomically at commit time, so two
// concurrent creations of the same room cannot both succeed.
type BookingService struct {
	bookingRepo domain.BookingRepository
}

// NewBookingService creates a new instance of the booking service
func NewBookingService(bookingRepo domain.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

// Create validates and stores a new booking
func (s *BookingService) Create(b *domain.Booking) error {
	if b.RoomID == 0 {
		return fmt.Errorf("booking must reference a room")
	}
	b.CheckIn = atMidnight(b.CheckIn)
	b.CheckOut = atMidnight(b.CheckOut)
	if !b.CheckOut.After(b.CheckIn) {
		return domain.ErrInvalidRange
	}
	if b.Price <= 0 {
		return fmt.Errorf("booking price must be greater than 0")
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return fmt.Errorf("new bookings must start as %s or %s", domain.BookingPending, domain.BookingConfirmed)
	}
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}

	if err := s.bookingRepo.CreateBooking(b); err != nil {
		if err == domain.ErrRoomUnavailable {
			return err
		}
		return fmt.Errorf("creating booking: %w", err)
	}
	return nil
}

// Get fetches a booking by ID
func (s *BookingService) Get(id int) (*domain.Booking, error) {
	return s.bookingRepo.GetBookingByID(id)
}

// Confirm moves a pending booking to confirmed
func (s *BookingService) Confirm(id int) error {
	return s.transition(id, domain.BookingConfirmed, domain.BookingPending)
}

// CheckIn moves a confirmed booking to checked in
func (s *BookingService) CheckIn(id int) error {
	return s.transition(id, domain.BookingCheckedIn, domain.BookingConfirmed)
}

// CheckOut moves a checked-in booking to checked out
func (s *BookingService) CheckOut(id int) error {
	return s.transition(id, domain.BookingCheckedOut, domain.BookingCheckedIn)
}

// Cancel cancels a booking that has not yet checked out
func (s *BookingService) Cancel(id int) error {
	return s.transition(id, domain.BookingCancelled,
		domain.BookingPending, domain.BookingConfirmed, domain.BookingCheckedIn)
}

func (s *BookingService) transition(id int, target domain.BookingStatus, allowedFrom ...domain.BookingStatus) error {
	b, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		return fmt.Errorf("loading booking %d: %w", id, err)
	}
	allowed := false
	for _, from := range allowedFrom {
		if b.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("booking %d cannot move from %s to %s", id, b.Status, target)
	}
	if err := s.bookingRepo.UpdateBookingStatus(id, target); err != nil {
		return fmt.Errorf("updating booking %d: %w", id, err)
	}
	return nil
}
