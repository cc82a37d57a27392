package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Verifier == nil {
		t.Fatal("Verifier config should not be nil")
	}
	if cfg.App == nil {
		t.Fatal("App config should not be nil")
	}
	if cfg.Verifier.DataRoot != "supplyfind-updates" {
		t.Errorf("Expected default data root supplyfind-updates, got %s", cfg.Verifier.DataRoot)
	}
	if got := cfg.Verifier.BaseDir(); got != filepath.Join("supplyfind-updates", "us", "co") {
		t.Errorf("Unexpected base dir %s", got)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			tempFile := filepath.Join(t.TempDir(), name)

			originalConfig := &Config{
				Verifier: &VerifierConfig{
					DataRoot: "/srv/listings",
					Region:   "us/ut",
				},
				App: &AppConfig{
					LogLevel:    "debug",
					LogFile:     "/tmp/test.log",
					Environment: "development",
				},
			}

			if err := SaveConfig(originalConfig, tempFile); err != nil {
				t.Fatalf("Failed to save config: %v", err)
			}

			loadedConfig, err := LoadConfig(tempFile)
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}

			if loadedConfig.Verifier.DataRoot != originalConfig.Verifier.DataRoot {
				t.Errorf("Expected data root %s, got %s", originalConfig.Verifier.DataRoot, loadedConfig.Verifier.DataRoot)
			}
			if loadedConfig.Verifier.Region != originalConfig.Verifier.Region {
				t.Errorf("Expected region %s, got %s", originalConfig.Verifier.Region, loadedConfig.Verifier.Region)
			}
			if loadedConfig.App.LogLevel != originalConfig.App.LogLevel {
				t.Errorf("Expected log level %s, got %s", originalConfig.App.LogLevel, loadedConfig.App.LogLevel)
			}
			if !loadedConfig.App.IsDevelopment() {
				t.Error("Expected development environment")
			}
		})
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(tempFile, []byte("verifier:\n  region: us/nm\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Verifier.Region != "us/nm" {
		t.Errorf("Expected region us/nm, got %s", cfg.Verifier.Region)
	}
	if cfg.Verifier.DataRoot == "" {
		t.Error("Expected data root default to survive a partial file")
	}
	if cfg.App == nil || cfg.App.LogLevel == "" || cfg.App.Environment == "" {
		t.Error("Expected app defaults to survive a partial file")
	}
}

func TestLoadConfigUnsupportedFormat(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tempFile, []byte("x = 1"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadConfig(tempFile)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tempFile, []byte("verifier: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadConfig(tempFile)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestConfigWithEnvVars(t *testing.T) {
	t.Setenv("WESCO_DATA_ROOT", "/data/env-root")
	t.Setenv("WESCO_REGION", "us/wy")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Verifier.DataRoot != "/data/env-root" {
		t.Errorf("Expected data root /data/env-root, got %s", cfg.Verifier.DataRoot)
	}
	if cfg.Verifier.Region != "us/wy" {
		t.Errorf("Expected region us/wy, got %s", cfg.Verifier.Region)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.App.LogLevel)
	}
}

func TestEnvVarsOverrideFile(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tempFile, []byte("verifier:\n  data_root: from-file\n  region: us/co\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("WESCO_DATA_ROOT", "from-env")

	cfg, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Verifier.DataRoot != "from-env" {
		t.Errorf("Expected environment to win, got %s", cfg.Verifier.DataRoot)
	}
}

func TestNewAppConfigDefaultsToStderrOnly(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")

	app := NewAppConfig()
	if app.LogFile != "" {
		t.Errorf("Expected no default log file, got %q", app.LogFile)
	}
	if app.LogLevel != "warn" {
		t.Errorf("Expected default log level warn, got %q", app.LogLevel)
	}
	if app.Environment != "production" {
		t.Errorf("Expected default environment production, got %q", app.Environment)
	}
}
