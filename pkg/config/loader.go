package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration file at configPath. A missing file
// yields the defaults; environment variables always take precedence.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env parsing failed: %v", ErrInvalidFormat, err)
	}

	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := getDefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig writes config to configPath in the format implied by its extension
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath returns the first existing config file.
// Priority: current directory > user config directory.
func getDefaultConfigPath() string {
	paths := []string{
		"./wesco_verify.yaml",
		"./wesco_verify.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".branchaudit", "config.yaml"),
			filepath.Join(homeDir, ".branchaudit", "config.json"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./wesco_verify.yaml"
}

func mergeEnvVars(config *Config) {
	mergeVerifierEnvVars(config)
	mergeAppEnvVars(config)
}

func mergeVerifierEnvVars(config *Config) {
	if config.Verifier == nil {
		config.Verifier = NewVerifierConfig()
		return
	}

	envMappings := map[string]*string{
		"WESCO_DATA_ROOT": &config.Verifier.DataRoot,
		"WESCO_REGION":    &config.Verifier.Region,
	}
	for envKey, fieldPtr := range envMappings {
		if value := os.Getenv(envKey); value != "" {
			*fieldPtr = value
		}
	}
}

func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.App.LogLevel = logLevel
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.App.LogFile = logFile
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Environment = env
	}
}
