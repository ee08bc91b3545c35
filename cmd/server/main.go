// Package main is the entry point for the payment fee service.
// It loads configuration, connects PostgreSQL and Redis, mounts the routes
// and serves until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payfee/internal/config"
	"payfee/internal/repositories"
	"payfee/internal/repositories/cache"
	"payfee/internal/routes"
	"payfee/internal/services/auth"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.SetupLogger()

	authCfg := auth.LoadConfig()
	if authCfg.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := repositories.InitDB(repositories.LoadDBConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer repositories.CloseDB(db)

	cacheService := connectCache()
	if cacheService != nil {
		defer func() {
			if err := cacheService.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Redis connection")
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := fiber.New(fiber.Config{
		AppName:      "payfee",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return response.Error(c, fe.Code, fe.Message)
			}
			return response.FromError(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	checkoutCfg := config.LoadCheckoutConfig()
	routes.SetupRoutes(app, routes.Dependencies{
		DB:       db,
		Cache:    cacheService,
		Checkout: checkoutCfg,
		Auth:     authCfg,
		Registry: registry,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	port := config.GetEnv("PORT", "3000")
	log.Info().
		Str("port", port).
		Str("currency", checkoutCfg.Currency).
		Int("gateways", len(checkoutCfg.Gateways)).
		Msg("Starting payment fee service")
	if err := app.Listen(":" + port); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}

// connectCache returns nil when Redis is unreachable so the service still
// starts and reads straight from PostgreSQL.
func connectCache() *cache.CacheService {
	cfg := cache.LoadRedisConfig()
	svc := cache.NewCacheService(cache.NewRedisClient(cfg), cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := svc.HealthCheck(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
		_ = svc.Close()
		return nil
	}
	log.Info().Str("addr", cfg.Host+":"+cfg.Port).Msg("Redis connected")
	return svc
}
