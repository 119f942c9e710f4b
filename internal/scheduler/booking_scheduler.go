package scheduler

import (
	"log"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// BookingScheduler sweeps bookings whose check-out date has passed into
// CHECKED_OUT once a day, so stale stays stop counting against inventory.
type BookingScheduler struct {
	bookingRepo domain.BookingRepository
	ticker      *time.Ticker
}

// NewBookingScheduler creates a new instance of the booking scheduler
func NewBookingScheduler(bookingRepo domain.BookingRepository) *BookingScheduler {
	return &BookingScheduler{
		bookingRepo: bookingRepo,
	}
}

// Start runs the sweep immediately and then once a day shortly after
// midnight.
func (s *BookingScheduler) Start() {
	log.Println("Booking scheduler started - runs every 24 hours")

	s.UpdateExpiredBookings()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	log.Printf("Next expiry sweep scheduled: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(time.Until(nextRun), func() {
		s.UpdateExpiredBookings()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.UpdateExpiredBookings()
			}
		}()
	})
}

// Stop halts the scheduler
func (s *BookingScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Booking scheduler stopped")
	}
}

// UpdateExpiredBookings marks bookings past their check-out date as checked out
func (s *BookingScheduler) UpdateExpiredBookings() {
	log.Println("Running expired booking sweep...")

	if err := s.bookingRepo.UpdateExpiredBookings(); err != nil {
		log.Printf("Error updating expired bookings: %v", err)
	} else {
		log.Println("Expired bookings updated")
	}
}
