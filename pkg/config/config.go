package config

import (
	"os"
	"path/filepath"
	"strings"
)

// VerifierConfig locates the listing data on disk
type VerifierConfig struct {
	DataRoot string `json:"data_root" yaml:"data_root" validate:"required"`
	Region   string `json:"region" yaml:"region" validate:"required"`
}

// NewVerifierConfig creates a verifier configuration with default values populated from environment variables
func NewVerifierConfig() *VerifierConfig {
	return &VerifierConfig{
		DataRoot: getEnv("WESCO_DATA_ROOT", "supplyfind-updates"),
		Region:   getEnv("WESCO_REGION", "us/co"),
	}
}

// BaseDir returns the directory holding the region's listing files
func (c *VerifierConfig) BaseDir() string {
	return filepath.Join(c.DataRoot, filepath.FromSlash(c.Region))
}

// AppConfig holds process-level settings
type AppConfig struct {
	LogLevel    string `json:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	Environment string `json:"environment" yaml:"environment" validate:"omitempty,oneof=development production"`
}

// NewAppConfig creates an app configuration with default values populated from environment variables.
// No log file is written unless LOG_FILE or log_file names one.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
		LogFile:     getEnv("LOG_FILE", ""),
		Environment: getEnv("APP_ENV", "production"),
	}
}

// IsDevelopment reports whether the console development logger should be used
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
