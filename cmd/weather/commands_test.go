package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/credential"
)

func newTestCLI(t *testing.T, stdin string) (*cli, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return &cli{
		cfg: &config.AppConfig{
			ConfigFile:    filepath.Join(t.TempDir(), "weather", "config.json"),
			HTTPTimeout:   time.Second,
			WatchInterval: time.Minute,
			Timezone:      time.UTC,
			Port:          "0",
		},
		logger: zap.NewNop(),
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
	}, &stdout, &stderr
}

func TestConfigureSavesCredential(t *testing.T) {
	c, stdout, _ := newTestCLI(t, "my-key\n")

	if code := c.run(context.Background(), []string{"configure", "weather-api"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Key saved successfully.") {
		t.Fatalf("unexpected output %q", stdout.String())
	}

	cred, err := credential.FromFile(c.cfg.ConfigFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.Kind() != credential.KindWeatherAPI || cred.Key() != "my-key" {
		t.Fatalf("expected weather-api/my-key, got %v/%s", cred.Kind(), cred.Key())
	}
}

func TestConfigureRejectsEmptyKey(t *testing.T) {
	c, _, _ := newTestCLI(t, "\n")

	if code := c.run(context.Background(), []string{"configure", "open-weather"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"forecast"}},
		{name: "unknown provider", args: []string{"configure", "accuweather"}},
		{name: "watch without location", args: []string{"watch"}},
		{name: "watch interval too short", args: []string{"watch", "-every", "10ms", "Oslo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCLI(t, "")
			if code := c.run(context.Background(), tt.args); code != 2 {
				t.Fatalf("expected exit code 2, got %d", code)
			}
		})
	}
}

func TestGetWithoutConfiguration(t *testing.T) {
	c, _, stderr := newTestCLI(t, "")

	if code := c.run(context.Background(), []string{"get", "London"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "weather configure") {
		t.Fatalf("expected configure hint, got %q", stderr.String())
	}
}

func TestParseCoords(t *testing.T) {
	lat, lon, err := parseCoords("49.987503, 36.285374")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 49.987503 || lon != 36.285374 {
		t.Fatalf("unexpected coordinates %v,%v", lat, lon)
	}

	for _, bad := range []string{"", "1", "a,b", "91,0", "0,181"} {
		if _, _, err := parseCoords(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
