package http

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/imangaj/hotelvaganna-sub000/internal/cache"
	"github.com/imangaj/hotelvaganna-sub000/internal/domain"
)

type RateHandler struct {
	rateRepo      domain.RateRepository
	calendarCache *cache.CalendarCache
}

func NewRateHandler(rateRepo domain.RateRepository, calendarCache *cache.CalendarCache) *RateHandler {
	return &RateHandler{
		rateRepo:      rateRepo,
		calendarCache: calendarCache,
	}
}

type rateOverrideRequest struct {
	PropertyID      int     `json:"propertyId"`
	CategoryID      int     `json:"categoryId"`
	Date            string  `json:"date"`
	Price           float64 `json:"price"`
	Available       *int    `json:"available"`
	IsClosed        bool    `json:"isClosed"`
	EnableBreakfast bool    `json:"enableBreakfast"`
}

// Upsert handles PUT /api/rates
func (h *RateHandler) Upsert(c *fiber.Ctx) error {
	var req rateOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.PropertyID <= 0 || req.CategoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "propertyId and categoryId are required"})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}
	if req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must not be negative"})
	}
	if req.Available != nil && *req.Available < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "available must not be negative"})
	}

	override := domain.RateOverride{
		PropertyID:      req.PropertyID,
		CategoryID:      req.CategoryID,
		Date:            date,
		Price:           req.Price,
		Available:       req.Available,
		IsClosed:        req.IsClosed,
		EnableBreakfast: req.EnableBreakfast,
	}
	if err := h.rateRepo.UpsertOverride(override); err != nil {
		log.Printf("Error upserting rate override: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error saving rate override"})
	}

	h.calendarCache.InvalidateProperty(c.Context(), req.PropertyID)
	return c.Status(fiber.StatusOK).JSON(override)
}

// Delete handles DELETE /api/rates
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	propertyID := c.QueryInt("propertyId")
	categoryID := c.QueryInt("categoryId")
	if propertyID <= 0 || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "propertyId and categoryId are required"})
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}

	if err := h.rateRepo.DeleteOverride(propertyID, categoryID, date); err != nil {
		log.Printf("Error deleting rate override: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error deleting rate override"})
	}

	h.calendarCache.InvalidateProperty(c.Context(), propertyID)
	return c.SendStatus(fiber.StatusNoContent)
}
