package application

import (
	"fmt"
	"time"

	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// AvailabilityService resolves which categories of a property can be sold
// for a stay, at what price and with which rooms. It is stateless: every
// call works on a snapshot fetched from the repositories, and two concurrent
// searches may both report the same room as free — the final conflict check
// happens at booking creation.
type AvailabilityService struct {
	roomRepo     domain.RoomRepository
	categoryRepo domain.CategoryRepository
	rateRepo     domain.RateRepository
	bookingRepo  domain.BookingRepository
	ranking      RankingPolicy
	fallback     FallbackPolicy
}

func NewAvailabilityService(
	roomRepo domain.RoomRepository,
	categoryRepo domain.CategoryRepository,
	rateRepo domain.RateRepository,
	bookingRepo domain.BookingRepository,
	ranking RankingPolicy,
	fallback FallbackPolicy,
) *AvailabilityService {
	return &AvailabilityService{
		roomRepo:     roomRepo,
		categoryRepo: categoryRepo,
		rateRepo:     rateRepo,
		bookingRepo:  bookingRepo,
		ranking:      ranking,
		fallback:     fallback,
	}
}

// categoryStay is the outcome of scanning one category over a stay range
type categoryStay struct {
	Valid        bool
	TotalPrice   float64
	MinInventory int
	Breakfast    bool
}

// categoryGroup keeps the rooms of one category in iteration order
type categoryGroup struct {
	Category domain.RoomCategory
	Rooms    []domain.Room
}

// Search returns an offer for every category of the property that can host
// the requested stay: guestCount guests split across roomCount rooms of the
// same category, for all nights in [checkIn, checkOut).
func (s *AvailabilityService) Search(propertyID int, checkIn, checkOut time.Time, guestCount, roomCount int) ([]domain.CategoryOffer, error) {
	checkIn = atMidnight(checkIn)
	checkOut = atMidnight(checkOut)
	if !checkOut.After(checkIn) {
		return nil, domain.ErrInvalidRange
	}
	if roomCount < 1 {
		roomCount = 1
	}
	if guestCount < 1 {
		guestCount = 1
	}

	rooms, err := s.roomRepo.ListRooms(propertyID)
	if err != nil {
		return nil, fmt.Errorf("loading rooms: %w: %w", domain.ErrRepositoryUnavailable, err)
	}
	overrides, err := s.rateRepo.ListOverrides(propertyID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("loading rate overrides: %w: %w", domain.ErrRepositoryUnavailable, err)
	}
	bookings, err := s.bookingRepo.ListActiveBookings(propertyID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("loading bookings: %w: %w", domain.ErrRepositoryUnavailable, err)
	}

	rates := newRateIndex(overrides)
	ledger := newBookingIndex(bookings)
	groups := groupByCategory(rooms)

	categories := make([]domain.RoomCategory, len(groups))
	roomsByCategoryID := make(map[int][]domain.Room, len(groups))
	for i, g := range groups {
		categories[i] = g.Category
		roomsByCategoryID[g.Category.ID] = g.Rooms
	}

	var offers []domain.CategoryOffer
	for _, g := range groups {
		if g.Category.MaxGuests*roomCount < guestCount {
			continue
		}

		stayRooms := g.Rooms
		stay := s.checkCategory(g.Category, g.Rooms, rates, ledger, checkIn, checkOut)
		if !stay.Valid {
			// One business substitution: a sold-out compact double is
			// interchangeable with the standard double, sold under the
			// compact category's name.
			if fb := s.fallback.FallbackFor(g.Category, categories); fb != nil {
				fbRooms := roomsByCategoryID[fb.ID]
				if len(fbRooms) > 0 {
					if fbStay := s.checkCategory(*fb, fbRooms, rates, ledger, checkIn, checkOut); fbStay.Valid {
						stay = fbStay
						stayRooms = fbRooms
					}
				}
			}
		}
		if !stay.Valid {
			continue
		}

		free := assignableRooms(s.ranking.Rank(stayRooms), ledger, checkIn, checkOut)
		if len(free) == 0 {
			continue
		}

		sellable := stay.MinInventory
		if len(free) < sellable {
			sellable = len(free)
		}
		roomIDs := make([]int, len(free))
		for i, room := range free {
			roomIDs[i] = room.ID
		}

		offers = append(offers, domain.CategoryOffer{
			CategoryID:         g.Category.ID,
			Name:               g.Category.Name,
			Description:        g.Category.Description,
			MaxGuests:          g.Category.MaxGuests,
			TotalPrice:         stay.TotalPrice,
			SellableCount:      sellable,
			BreakfastAvailable: stay.Breakfast,
			RoomIDs:            roomIDs,
		})
	}
	return offers, nil
}

// checkCategory scans every night of the stay. A single closed night or a
// night with nothing left invalidates the whole category; the binding
// inventory figure is the scarcest night's.
func (s *AvailabilityService) checkCategory(cat domain.RoomCategory, rooms []domain.Room, rates *rateIndex, ledger *bookingIndex, checkIn, checkOut time.Time) categoryStay {
	stay := categoryStay{Breakfast: true}
	first := true
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		day := rates.ResolveDay(cat, night)
		if day.IsClosed {
			return categoryStay{}
		}
		stay.TotalPrice += day.Price

		capacity := len(rooms)
		if day.Available != nil {
			capacity = *day.Available
		}
		remaining := capacity - ledger.ActiveCountOn(rooms, night)
		if remaining <= 0 {
			return categoryStay{}
		}
		if first || remaining < stay.MinInventory {
			stay.MinInventory = remaining
			first = false
		}
		stay.Breakfast = stay.Breakfast && day.EnableBreakfast
	}
	stay.Valid = true
	return stay
}

// RateCalendar produces the staff-facing grid of one cell per category per
// day over [from, to]. It is a reporting view: no room assignment and no
// fallback substitution, only per-day counts.
func (s *AvailabilityService) RateCalendar(propertyID int, from, to time.Time) ([]domain.CalendarCell, error) {
	from = atMidnight(from)
	to = atMidnight(to)
	if to.Before(from) {
		return nil, domain.ErrInvalidRange
	}

	categories, err := s.categoryRepo.ListCategories(propertyID)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w: %w", domain.ErrRepositoryUnavailable, err)
	}
	rooms, err := s.roomRepo.ListRooms(propertyID)
	if err != nil {
		return nil, fmt.Errorf("loading rooms: %w: %w", domain.ErrRepositoryUnavailable, err)
	}
	end := to.AddDate(0, 0, 1)
	overrides, err := s.rateRepo.ListOverrides(propertyID, from, end)
	if err != nil {
		return nil, fmt.Errorf("loading rate overrides: %w: %w", domain.ErrRepositoryUnavailable, err)
	}
	bookings, err := s.bookingRepo.ListActiveBookings(propertyID, from, end)
	if err != nil {
		return nil, fmt.Errorf("loading bookings: %w: %w", domain.ErrRepositoryUnavailable, err)
	}

	rates := newRateIndex(overrides)
	ledger := newBookingIndex(bookings)
	roomsByCategoryID := make(map[int][]domain.Room)
	for _, room := range rooms {
		roomsByCategoryID[room.Category.ID] = append(roomsByCategoryID[room.Category.ID], room)
	}

	var cells []domain.CalendarCell
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, cat := range categories {
			catRooms := roomsByCategoryID[cat.ID]
			rate := rates.ResolveDay(cat, day)

			total := len(catRooms)
			if rate.Available != nil {
				total = *rate.Available
			}
			booked := ledger.ActiveCountOn(catRooms, day)

			cells = append(cells, domain.CalendarCell{
				Date:            day,
				CategoryID:      cat.ID,
				Price:           rate.Price,
				TotalSellable:   total,
				Booked:          booked,
				Available:       total - booked,
				IsOverride:      rate.IsOverride,
				IsClosed:        rate.IsClosed,
				EnableBreakfast: rate.EnableBreakfast,
			})
		}
	}
	return cells, nil
}

// groupByCategory groups rooms by category preserving first-appearance order,
// so search results come out in a stable order for the same room list.
func groupByCategory(rooms []domain.Room) []categoryGroup {
	index := make(map[int]int)
	var groups []categoryGroup
	for _, room := range rooms {
		i, ok := index[room.Category.ID]
		if !ok {
			i = len(groups)
			index[room.Category.ID] = i
			groups = append(groups, categoryGroup{Category: room.Category})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}
	return groups
}

// atMidnight drops any time-of-day component; the engine reasons in whole
// nights only.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
