package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"account-service/app/config"
	"account-service/app/driver/billing"
	"account-service/app/driver/kratos"
	"account-service/app/driver/postgres"
	"account-service/app/gateway"
	"account-service/app/port"
	"account-service/app/rest"
	"account-service/app/rest/handlers"
	"account-service/app/usecase"
	"account-service/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Stores
	Institutions port.InstitutionStore
	Profiles     port.ProfileStore
	Identities   port.IdentityStore
	Billing      port.BillingClient

	// Usecases
	AccountUsecase      port.AccountUsecase
	SubscriptionUsecase port.SubscriptionUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize kratos client: %w", err)
	}

	// Stores and gateways
	container.Institutions = postgres.NewInstitutionRepository(container.DB.Pool(), logger)
	container.Profiles = postgres.NewProfileRepository(container.DB.Pool(), logger)

	identityAdapter := kratos.NewIdentityAdapter(container.KratosClient, logger)
	container.Identities = gateway.NewIdentityGateway(identityAdapter, logger)

	container.Billing = billing.NewClient(cfg, logger)

	// Usecases
	saga := usecase.NewProvisioningSaga(
		container.Identities,
		container.Institutions,
		container.Profiles,
		logger,
	)
	container.AccountUsecase = usecase.NewAccountUsecase(
		saga,
		container.Institutions,
		validator.New(),
		logger,
	)
	container.SubscriptionUsecase = usecase.NewSubscriptionActivator(
		container.Institutions,
		container.Billing,
		logger,
	)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:              c.Logger,
		AccountUsecase:      c.AccountUsecase,
		SubscriptionUsecase: c.SubscriptionUsecase,
		HealthChecks: []handlers.DependencyCheck{
			{Name: "database", Check: c.DB.HealthCheck},
			{Name: "kratos", Check: c.KratosClient.HealthCheck},
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
