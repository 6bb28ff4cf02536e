package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/4Sight-Development/csir-demo/internal/api/http"
	"github.com/4Sight-Development/csir-demo/internal/auth"
	"github.com/4Sight-Development/csir-demo/internal/config"
	"github.com/4Sight-Development/csir-demo/internal/feed"
	"github.com/4Sight-Development/csir-demo/internal/store"
	"github.com/4Sight-Development/csir-demo/internal/weather"
	"github.com/4Sight-Development/csir-demo/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Upstream weather + geolocation client.
	upstream := providers.NewClient(httpClient)

	// Process-wide location header cache.
	headers := store.NewMemoryHeaderCache()

	// Core service composing resolution, fetch, normalization, aggregation.
	weatherSvc := weather.NewService(upstream, headers)

	// Token issuance and bearer validation.
	authSvc := auth.NewService(auth.Config{
		Key:                cfg.JWTKey,
		Issuer:             cfg.JWTIssuer,
		Audience:           cfg.JWTAudience,
		AccessTokenMinutes: cfg.AccessTokenMinutes,
	})

	// Live feed publisher for the dashboard chart.
	publisher, err := feed.NewPublisher(feed.PublisherConfig{
		Broker:   cfg.MQTTBroker,
		ClientID: cfg.MQTTClientID,
		Topic:    cfg.MQTTTopic,
		Interval: cfg.FeedInterval,
		Enabled:  cfg.MQTTEnabled,
	})
	if err != nil {
		log.Printf("WARN: MQTT feed publisher unavailable: %v", err)
		publisher, _ = feed.NewPublisher(feed.PublisherConfig{Enabled: false})
	}
	if err := publisher.Start(); err != nil {
		log.Fatalf("failed to start feed publisher: %v", err)
	}
	defer publisher.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "csir-demo",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
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
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000, https://localhost:3000, " +
			"http://localhost:5173, https://localhost:5173, " +
			"http://127.0.0.1:5173, https://127.0.0.1:5173, " +
			"http://localhost:41130, https://localhost:41130",
		AllowCredentials: true,
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "csir-demo",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, weatherSvc, authSvc)

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
