package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the account service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9500"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL" required:"true"`
	DatabaseHost     string `env:"DB_HOST" default:"account-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"account_db"`
	DatabaseUser     string `env:"DB_USER" default:"account_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Kratos
	KratosPublicURL string        `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosAdminURL  string        `env:"KRATOS_ADMIN_URL" required:"true"`
	KratosTimeout   time.Duration `env:"KRATOS_TIMEOUT" default:"30s"`

	// Billing
	BillingAPIURL  string        `env:"BILLING_API_URL" required:"true"`
	BillingAPIKey  string        `env:"BILLING_API_KEY"`
	BillingTimeout time.Duration `env:"BILLING_TIMEOUT" default:"10s"`

	// Subscription lifecycle
	ExpirySweepLimit int `env:"EXPIRY_SWEEP_LIMIT" default:"100"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9500")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "account-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "account_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "account_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	var err error
	config.KratosTimeout, err = getDurationEnv("KRATOS_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	// Billing configuration
	config.BillingAPIURL = os.Getenv("BILLING_API_URL")
	if config.BillingAPIURL == "" {
		return nil, fmt.Errorf("BILLING_API_URL is required")
	}
	config.BillingAPIKey = os.Getenv("BILLING_API_KEY")

	config.BillingTimeout, err = getDurationEnv("BILLING_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	// Subscription lifecycle
	sweepLimitStr := getEnvOrDefault("EXPIRY_SWEEP_LIMIT", "100")
	sweepLimit, err := strconv.Atoi(sweepLimitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EXPIRY_SWEEP_LIMIT: %w", err)
	}
	config.ExpirySweepLimit = sweepLimit

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate timeouts (minimum 1 second)
	if c.KratosTimeout < time.Second {
		return fmt.Errorf("kratos timeout must be at least 1 second, got: %v", c.KratosTimeout)
	}
	if c.BillingTimeout < time.Second {
		return fmt.Errorf("billing timeout must be at least 1 second, got: %v", c.BillingTimeout)
	}

	// Validate expiry sweep limit
	if c.ExpirySweepLimit < 1 {
		return fmt.Errorf("expiry sweep limit must be at least 1, got: %d", c.ExpirySweepLimit)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) (time.Duration, error) {
	value := getEnvOrDefault(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return duration, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
