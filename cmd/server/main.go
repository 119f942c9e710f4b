package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/imangaj/hotelvaganna-sub000/internal/application"
	"github.com/imangaj/hotelvaganna-sub000/internal/cache"
	"github.com/imangaj/hotelvaganna-sub000/internal/config"
	"github.com/imangaj/hotelvaganna-sub000/internal/infrastructure/repository"
	handlers "github.com/imangaj/hotelvaganna-sub000/internal/interfaces/http"
	"github.com/imangaj/hotelvaganna-sub000/internal/scheduler"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Calendar cache (optional; nil client disables caching)
	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if redisClient == nil && cfg.RedisAddr != "" {
		log.Printf("Warning: redis unreachable at %s, calendar cache disabled", cfg.RedisAddr)
	}
	calendarCache := cache.NewCalendarCache(redisClient, cfg.CalendarCacheTTL)

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	rateRepo := repository.NewRateRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Availability engine
	availabilityService := application.NewAvailabilityService(
		roomRepo,
		categoryRepo,
		rateRepo,
		bookingRepo,
		application.DefaultRankingPolicy(),
		application.DefaultFallbackPolicy(),
	)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, calendarCache)

	// Rates
	rateHandler := handlers.NewRateHandler(rateRepo, calendarCache)

	// Bookings
	bookingService := application.NewBookingService(bookingRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Expiry sweep
	bookingScheduler := scheduler.NewBookingScheduler(bookingRepo)
	bookingScheduler.Start()
	defer bookingScheduler.Stop()

	api := app.Group("/api")

	availability := api.Group("/availability")
	availability.Get("/search", availabilityHandler.Search)
	availability.Get("/calendar", availabilityHandler.RateCalendar)

	rates := api.Group("/rates")
	rates.Put("/", rateHandler.Upsert)
	rates.Delete("/", rateHandler.Delete)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Post("/:id/confirm", bookingHandler.Confirm)
	bookings.Post("/:id/check-in", bookingHandler.CheckIn)
	bookings.Post("/:id/check-out", bookingHandler.CheckOut)
	bookings.Post("/:id/cancel", bookingHandler.Cancel)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
