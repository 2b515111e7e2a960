package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"WEATHER_CONFIG_FILE", "HTTP_TIMEOUT", "WATCH_INTERVAL", "WEATHER_TIMEZONE", "PORT", "WEATHER_PORT", "LOG_LEVEL", "APP_ENV"} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.WatchInterval != 15*time.Minute {
		t.Errorf("expected 15m interval, got %v", cfg.WatchInterval)
	}
	if cfg.Timezone != time.UTC {
		t.Errorf("expected UTC, got %v", cfg.Timezone)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if filepath.Base(cfg.ConfigFile) != "config.json" || filepath.Base(filepath.Dir(cfg.ConfigFile)) != "weather" {
		t.Errorf("unexpected config file %q", cfg.ConfigFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEATHER_CONFIG_FILE", "/tmp/custom.json")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("WATCH_INTERVAL", "1m")
	t.Setenv("WEATHER_TIMEZONE", "UTC")
	t.Setenv("PORT", "")
	t.Setenv("WEATHER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigFile != "/tmp/custom.json" {
		t.Errorf("expected custom config file, got %q", cfg.ConfigFile)
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.WatchInterval != time.Minute {
		t.Errorf("unexpected durations %v / %v", cfg.HTTPTimeout, cfg.WatchInterval)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"HTTP_TIMEOUT", "soon"},
		{"WATCH_INTERVAL", "often"},
		{"WEATHER_TIMEZONE", "Mars/Olympus_Mons"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("WEATHER_CONFIG_FILE", "/tmp/custom.json")
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
