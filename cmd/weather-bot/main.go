package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-bot/internal/api/http"
	"github.com/i474232898/weather-bot/internal/config"
	"github.com/i474232898/weather-bot/internal/fetch"
	"github.com/i474232898/weather-bot/internal/scheduler"
	"github.com/i474232898/weather-bot/internal/store"
	"github.com/i474232898/weather-bot/internal/weather"
	"github.com/i474232898/weather-bot/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// A missing API key for the forecast provider stops the process here.
	provider, err := providers.New(cfg.ProviderKind(), cfg.ProviderConfig())
	if err != nil {
		log.Fatalf("failed to configure weather provider: %v", err)
	}
	log.Printf("INFO: using %s weather provider", provider.Name())

	// Shared HTTP client for outbound API calls, behind a circuit breaker.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	fetcher := fetch.New(httpClient, "weatherapi-"+provider.Name())

	service := weather.NewService(provider, fetcher)

	// In-memory report log with configured retention.
	reports := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Scheduler that periodically reports the weather for configured locations.
	sched := scheduler.New(cfg.ReportLocations, cfg.ReportInterval, service, reports)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-bot",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.HTTPTimeout + 5*time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-bot",
			"provider": provider.Name(),
			"breaker":  fetcher.State().String(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, reports)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
