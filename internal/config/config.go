package config

import (
	"os"
	"strconv"

	"nestmetrics/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Model     ModelConfig
	Dashboard DashboardConfig
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset loading settings
type DataConfig struct {
	// File is the CSV or XLSX dataset path. Empty means no file source.
	File string
	// ListingLimit caps /api/listings responses when the caller omits one.
	ListingLimit int
}

// DatabaseConfig holds the optional Postgres listing source settings
type DatabaseConfig struct {
	URL string
}

// ModelConfig holds the serialized regression model settings
type ModelConfig struct {
	// File is the JSON coefficients path. Empty means statistical-only mode.
	File string
}

// DashboardConfig holds the chi dashboard settings
type DashboardConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "5001"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			File:         getEnvOrDefault("DATA_FILE", ""),
			ListingLimit: getEnvIntOrDefault("LISTING_LIMIT", 100),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Model: ModelConfig{
			File: getEnvOrDefault("MODEL_FILE", ""),
		},
		Dashboard: DashboardConfig{
			Port: getEnvOrDefault("UI_PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.ListingLimit <= 0 {
		return errors.ConfigInvalid("listing limit must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
