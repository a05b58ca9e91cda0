package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"account-service/app/port"
	"account-service/app/rest/handlers"
	custommw "account-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger              *slog.Logger
	AccountUsecase      port.AccountUsecase
	SubscriptionUsecase port.SubscriptionUsecase
	HealthChecks        []handlers.DependencyCheck
	EnableDebug         bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	accountHandler := handlers.NewAccountHandler(config.AccountUsecase, config.Logger)
	subscriptionHandler := handlers.NewSubscriptionHandler(config.SubscriptionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks...)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Account provisioning
	accounts := v1.Group("/accounts")
	accounts.POST("/provision", accountHandler.ProvisionAccount)

	// Institutions
	institutions := v1.Group("/institutions")
	institutions.GET("/:id", accountHandler.GetInstitution)

	// Subscription lifecycle
	subscriptions := v1.Group("/subscriptions")
	subscriptions.POST("/activate", subscriptionHandler.Activate)
	subscriptions.POST("/:id/cancel", subscriptionHandler.Cancel)
	subscriptions.POST("/:id/expire", subscriptionHandler.Expire)
	subscriptions.POST("/expire-lapsed", subscriptionHandler.ExpireLapsed)

	return e
}
