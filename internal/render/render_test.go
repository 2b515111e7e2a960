package render

import (
	"bytes"
	"testing"

	"github.com/i474232898/weather-cli/internal/weather"
)

func TestWindGlyph(t *testing.T) {
	tests := []struct {
		deg  int
		want string
	}{
		{0, "→"},
		{45, "↗"},
		{90, "↑"},
		{135, "↖"},
		{180, "←"},
		{225, "↙"},
		{270, "↓"},
		{315, "↘"},
		{280, "↓"},
		{325, "↘"},
		{355, "→"},
		{-45, "↘"},
	}

	for _, tt := range tests {
		if got := WindGlyph(tt.deg); got != tt.want {
			t.Errorf("WindGlyph(%d): expected %s, got %s", tt.deg, tt.want, got)
		}
		if got := WindGlyph(tt.deg + 360); got != tt.want {
			t.Errorf("WindGlyph(%d): expected %s, got %s", tt.deg+360, tt.want, got)
		}
	}
}

func TestLines(t *testing.T) {
	w := weather.Weather{
		Location:    "London, GB",
		Description: "light rain",
		Temperature: 11.5,
		Wind:        weather.Wind{Speed: 5, Deg: 90},
		RainVolume:  2.54,
		Visibility:  10000,
		Cloudiness:  75,
	}

	want := []string{
		"London, GB",
		"light rain",
		"+11.5 °C",
		"↑ 18.0 km/h",
		"10000 m",
		"2.5 mm",
	}
	got := Lines(w)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	w.Temperature = -3
	if got := Lines(w)[2]; got != "-3 °C" {
		t.Errorf("expected %q, got %q", "-3 °C", got)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, weather.Weather{Location: "Oslo, Norway"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Oslo, Norway\n\n+0 °C\n→ 0.0 km/h\n0 m\n0.0 mm\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
