package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-faq-bot/config"
	"campus-faq-bot/handlers"
	"campus-faq-bot/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Wire the chat core: FAQ matcher, in-memory session store, daily log sink
	matcher := services.NewFaqMatcher()
	store := services.NewMemorySessionStore()
	sink := services.NewDailyFileSink(cfg.LogDir)

	// Session eviction is opt-in; the default keeps every session resident
	// for the process lifetime.
	if cfg.SessionTTLMinutes > 0 {
		cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
		defer cancelCleanup()
		services.StartSessionCleanup(
			cleanupCtx,
			store,
			time.Duration(cfg.SessionTTLMinutes)*time.Minute,
			time.Duration(cfg.SessionCleanupMinutes)*time.Minute,
		)
	}

	chatHandler := handlers.NewChatHandler(matcher, store, sink, cfg.FallbackThreshold, cfg.TrustSessionContext)
	handoffHandler := handlers.NewHandoffHandler(sink)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Widget-facing API
	api := app.Group("/api")
	api.Post("/chat", chatHandler.Handle)
	api.Post("/handoff", handoffHandler.Handle)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "campus-faq-bot",
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
