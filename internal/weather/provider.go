package weather

import (
	"context"
	"time"
)

// Provider abstracts a weather data source (e.g. OpenWeatherMap, WeatherAPI).
type Provider interface {
	Name() string
	WeatherByCity(ctx context.Context, city string) (Weather, error)
}

// HistoryProvider is implemented by providers that can look up past conditions.
type HistoryProvider interface {
	Provider
	HistoryWeatherByCity(ctx context.Context, city string, at time.Time) (Weather, error)
}

// CoordinatesProvider is implemented by providers that accept a lat/lon pair.
type CoordinatesProvider interface {
	Provider
	WeatherByCoordinates(ctx context.Context, lat, lon float64) (Weather, error)
}
