// Package render formats a weather.Weather as the plain-text lines the CLI prints.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/i474232898/weather-cli/internal/weather"
)

var arrows = [8]string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

// WindGlyph maps a compass direction onto one of eight arrows.
func WindGlyph(deg int) string {
	idx := int(math.Round(float64(deg)/45.0)) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}

// Lines renders w: location, description, temperature, wind, visibility and rain.
func Lines(w weather.Weather) []string {
	return []string{
		w.Location,
		w.Description,
		fmt.Sprintf("%+g °C", w.Temperature),
		fmt.Sprintf("%s %.1f km/h", WindGlyph(w.Wind.Deg), w.Wind.Speed*3.6),
		fmt.Sprintf("%d m", w.Visibility),
		fmt.Sprintf("%.1f mm", w.RainVolume),
	}
}

// Write prints Lines(w) to out, one per line.
func Write(out io.Writer, w weather.Weather) error {
	for _, line := range Lines(w) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
