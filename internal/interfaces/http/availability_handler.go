package http

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/imangaj/hotelvaganna-sub000/internal/application"
	"github.com/imangaj/hotelvaganna-sub000/internal/cache"
	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

// parseDate parses a YYYY-MM-DD calendar date at midnight UTC. Check-in and
// check-out house-rule times are a caller concern; the engine only reasons in
// whole nights.
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

type AvailabilityHandler struct {
	service       *application.AvailabilityService
	calendarCache *cache.CalendarCache
}

func NewAvailabilityHandler(service *application.AvailabilityService, calendarCache *cache.CalendarCache) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:       service,
		calendarCache: calendarCache,
	}
}

// Search handles GET /api/availability/search
func (h *AvailabilityHandler) Search(c *fiber.Ctx) error {
	propertyID := c.QueryInt("propertyId")
	if propertyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "propertyId is required"})
	}
	checkIn, err := parseDate(c.Query("checkIn"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid checkIn, expected YYYY-MM-DD"})
	}
	checkOut, err := parseDate(c.Query("checkOut"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid checkOut, expected YYYY-MM-DD"})
	}
	guests := c.QueryInt("guests", 1)
	rooms := c.QueryInt("rooms", 1)

	searchID := uuid.NewString()
	log.Printf("[search %s] property=%d %s -> %s guests=%d rooms=%d",
		searchID, propertyID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"), guests, rooms)

	offers, err := h.service.Search(propertyID, checkIn, checkOut, guests, rooms)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[search %s] error: %v", searchID, err)
		if errors.Is(err, domain.ErrRepositoryUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error searching availability"})
	}

	if offers == nil {
		offers = []domain.CategoryOffer{}
	}
	return c.JSON(offers)
}

// RateCalendar handles GET /api/availability/calendar
func (h *AvailabilityHandler) RateCalendar(c *fiber.Ctx) error {
	propertyID := c.QueryInt("propertyId")
	if propertyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "propertyId is required"})
	}
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from, expected YYYY-MM-DD"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to, expected YYYY-MM-DD"})
	}

	key := cache.Key(propertyID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if payload, ok := h.calendarCache.Get(c.Context(), key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	cells, err := h.service.RateCalendar(propertyID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error building rate calendar: %v", err)
		if errors.Is(err, domain.ErrRepositoryUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error building rate calendar"})
	}

	if cells == nil {
		cells = []domain.CalendarCell{}
	}
	payload, err := json.Marshal(cells)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error encoding rate calendar"})
	}
	h.calendarCache.Set(c.Context(), key, payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
