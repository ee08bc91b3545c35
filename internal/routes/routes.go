// Package routes defines the API routing configuration.
// It builds services from their repositories and mounts the storefront and
// admin handlers with their middleware.
package routes

import (
	"context"
	"time"

	"payfee/internal/config"
	"payfee/internal/handlers"
	"payfee/internal/middleware"
	"payfee/internal/models"
	"payfee/internal/repositories"
	"payfee/internal/repositories/cache"
	"payfee/internal/services/auth"
	"payfee/internal/services/catalog"
	"payfee/internal/services/checkout"
	"payfee/internal/services/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the routes are built from.
// Cache may be nil, in which case every read goes to the database.
type Dependencies struct {
	DB       *gorm.DB
	Cache    *cache.CacheService
	Checkout config.CheckoutConfig
	Auth     auth.Config
	Registry *prometheus.Registry
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	// Initialize repositories
	settingsRepo := repositories.NewSettingsRepository(deps.DB)
	productRepo := repositories.NewProductRepository(deps.DB)
	cartRepo := repositories.NewCartRepository(deps.DB)

	// A typed nil *CacheService must not reach the services as a non-nil interface.
	var settingsCache settings.Cache
	var catalogCache catalog.Cache
	if deps.Cache != nil {
		settingsCache = deps.Cache
		catalogCache = deps.Cache
	}

	// Initialize services
	settingsService := settings.NewService(settingsRepo, settingsCache, deps.Checkout.Gateways)
	catalogService := catalog.NewService(productRepo, catalogCache)
	checkoutService := checkout.NewService(
		cartRepo,
		settingsService,
		catalogService,
		deps.Checkout,
		checkout.NewPrometheusMetrics(registry),
	)
	authService := auth.NewService(deps.Auth)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(healthChecks(deps), cacheStats(deps.Cache))
	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(checkoutService)

	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// Storefront
	carts := api.Group("/carts")
	carts.Post("/", cartHandler.CreateCart)
	carts.Get("/:id", cartHandler.GetCart)
	carts.Post("/:id/items", cartHandler.AddItem)
	carts.Delete("/:id/items/:productId", cartHandler.RemoveItem)
	carts.Post("/:id/recalculate", rateLimit(60), cartHandler.Recalculate)
	carts.Post("/:id/orders", cartHandler.PlaceOrder)
	carts.Get("/:id/order", cartHandler.GetOrder)

	// Admin
	admin := api.Group("/admin")
	// Must stay above the secured group: its middleware is mounted on the
	// same prefix and login never calls Next.
	admin.Post("/login", rateLimit(5), authHandler.Login)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	secured := admin.Group("/", authMiddleware.Handler, middleware.AdminOnly)

	secured.Get("/payment-fee", middleware.HasPermission(models.PermissionFeeSettingsRead), settingsHandler.GetSettings)
	secured.Put("/payment-fee", middleware.HasPermission(models.PermissionFeeSettingsWrite), settingsHandler.UpdateSettings)
	secured.Get("/payment-fee/gateways", middleware.HasPermission(models.PermissionFeeSettingsRead), settingsHandler.ListGateways)

	secured.Post("/products", middleware.HasPermission(models.PermissionProductWrite), productHandler.CreateProduct)
	secured.Get("/products", middleware.HasPermission(models.PermissionProductRead), productHandler.ListProducts)
	secured.Put("/products/:id/fee-exclusion", middleware.HasPermission(models.PermissionProductWrite), productHandler.SetFeeExclusion)
	secured.Get("/cache/stats", middleware.HasPermission(models.PermissionFeeSettingsRead), healthHandler.CacheStats)
}

func rateLimit(maxPerMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}

func healthChecks(deps Dependencies) map[string]handlers.Check {
	checks := map[string]handlers.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := deps.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if deps.Cache != nil {
		checks["redis"] = deps.Cache.HealthCheck
	}
	return checks
}

func cacheStats(c *cache.CacheService) handlers.CacheStatsSource {
	if c == nil {
		return nil
	}
	return c
}
