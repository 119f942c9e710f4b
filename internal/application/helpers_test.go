package application

import (
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func testCategory(id int, name string, maxGuests int, basePrice float64) domain.RoomCategory {
	return domain.RoomCategory{
		ID:         id,
		PropertyID: 1,
		Name:       name,
		MaxGuests:  maxGuests,
		BasePrice:  basePrice,
	}
}

func testRoom(id int, number string, cat domain.RoomCategory) domain.Room {
	return domain.Room{
		ID:         id,
		PropertyID: cat.PropertyID,
		RoomNumber: number,
		Category:   cat,
	}
}

func testBooking(roomID int, checkIn, checkOut time.Time, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:         roomID*1000 + checkIn.Day(),
		PropertyID: 1,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
	}
}

type fakeRoomRepo struct {
	rooms []domain.Room
	err   error
}

func (f *fakeRoomRepo) ListRooms(propertyID int) ([]domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

type fakeCategoryRepo struct {
	categories []domain.RoomCategory
	err        error
}

func (f *fakeCategoryRepo) ListCategories(propertyID int) ([]domain.RoomCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fakeRateRepo struct {
	overrides []domain.RateOverride
	err       error
}

func (f *fakeRateRepo) ListOverrides(propertyID int, from, to time.Time) ([]domain.RateOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.RateOverride
	for _, o := range f.overrides {
		if !o.Date.Before(from) && o.Date.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) UpsertOverride(o domain.RateOverride) error { return nil }

func (f *fakeRateRepo) DeleteOverride(propertyID, categoryID int, date time.Time) error { return nil }

type fakeBookingRepo struct {
	bookings   []domain.Booking
	err        error
	createErr  error
	created    []*domain.Booking
	statusByID map[int]domain.BookingStatus
}

func (f *fakeBookingRepo) ListActiveBookings(propertyID int, from, to time.Time) ([]domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.Status.Active() && b.CheckIn.Before(to) && b.CheckOut.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetBookingByID(id int) (*domain.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrRepositoryUnavailable
}

func (f *fakeBookingRepo) CreateBooking(b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = len(f.created) + 1
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(id int, status domain.BookingStatus) error {
	if f.statusByID == nil {
		f.statusByID = make(map[int]domain.BookingStatus)
	}
	f.statusByID[id] = status
	return nil
}

func (f *fakeBookingRepo) UpdateExpiredBookings() error { return nil }

func newTestService(rooms []domain.Room, overrides []domain.RateOverride, bookings []domain.Booking) *AvailabilityService {
	var categories []domain.RoomCategory
	seen := make(map[int]bool)
	for _, room := range rooms {
		if !seen[room.Category.ID] {
			seen[room.Category.ID] = true
			categories = append(categories, room.Category)
		}
	}
	return NewAvailabilityService(
		&fakeRoomRepo{rooms: rooms},
		&fakeCategoryRepo{categories: categories},
		&fakeRateRepo{overrides: overrides},
		&fakeBookingRepo{bookings: bookings},
		DefaultRankingPolicy(),
		DefaultFallbackPolicy(),
	)
}
