package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// ConfigFile is where the provider credential is stored.
	ConfigFile string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// WatchInterval controls how often `watch` refreshes.
	WatchInterval time.Duration

	// Timezone used to interpret historical date arguments.
	Timezone *time.Location

	Port     string
	LogLevel string
	Env      string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is honoured when present.
func Load() (*AppConfig, error) {
	// A missing .env file is the normal case for an installed CLI.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.ConfigFile = os.Getenv("WEATHER_CONFIG_FILE")
	if cfg.ConfigFile == "" {
		path, err := DefaultConfigFile()
		if err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := time.ParseDuration(getenvDefault("WATCH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WATCH_INTERVAL: %w", err)
	}
	cfg.WatchInterval = interval

	loc, err := time.LoadLocation(getenvDefault("WEATHER_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEZONE: %w", err)
	}
	cfg.Timezone = loc

	cfg.Port = getenvDefault("PORT", strconv.Itoa(getenvInt("WEATHER_PORT", 8080)))
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "warn")
	cfg.Env = getenvDefault("APP_ENV", "production")

	return cfg, nil
}

// DefaultConfigFile returns <user config dir>/weather/config.json.
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("couldn't access user config directory: %w", err)
	}
	return filepath.Join(dir, "weather", "config.json"), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
