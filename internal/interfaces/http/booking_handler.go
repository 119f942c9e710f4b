package http

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/imangaj/hotelvaganna-sub000/internal/application"
	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type BookingHandler struct {
	service *application.BookingService
}

func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

type createBookingRequest struct {
	PropertyID int     `json:"propertyId"`
	RoomID     int     `json:"roomId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Price      float64 `json:"price"`
	Confirmed  bool    `json:"confirmed"`
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid checkIn, expected YYYY-MM-DD"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid checkOut, expected YYYY-MM-DD"})
	}

	status := domain.BookingPending
	if req.Confirmed {
		status = domain.BookingConfirmed
	}
	booking := &domain.Booking{
		PropertyID: req.PropertyID,
		RoomID:     req.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
		Price:      req.Price,
	}

	if err := h.service.Create(booking); err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "room no longer available for the requested dates"})
		}
		if errors.Is(err, domain.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error creating booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error creating booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	booking, err := h.service.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
	}
	return c.JSON(booking)
}

// Confirm handles POST /api/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	return h.updateStatus(c, h.service.Confirm)
}

// CheckIn handles POST /api/bookings/:id/check-in
func (h *BookingHandler) CheckIn(c *fiber.Ctx) error {
	return h.updateStatus(c, h.service.CheckIn)
}

// CheckOut handles POST /api/bookings/:id/check-out
func (h *BookingHandler) CheckOut(c *fiber.Ctx) error {
	return h.updateStatus(c, h.service.CheckOut)
}

// Cancel handles POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	return h.updateStatus(c, h.service.Cancel)
}

func (h *BookingHandler) updateStatus(c *fiber.Ctx, fn func(int) error) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := fn(id); err != nil {
		log.Printf("Error updating booking %d: %v", id, err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
