package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the single entry point for weather lookups. It dispatches to the
// configured provider and returns a normalized Weather.
type Service struct {
	provider Provider
	logger   *zap.Logger
}

// NewService creates a new Service.
func NewService(provider Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// ProviderName returns the name of the configured provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// GetWeather fetches conditions for location, either now or at the instant in when.
func (s *Service) GetWeather(ctx context.Context, location string, when When) (Weather, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Weather{}, fmt.Errorf("location must not be empty")
	}

	log := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", s.provider.Name()),
		zap.String("location", location),
		zap.Stringer("when", when),
	)
	log.Debug("weather lookup started")

	var (
		w   Weather
		err error
	)
	if when.IsNow() {
		w, err = s.provider.WeatherByCity(ctx, location)
	} else {
		hp, ok := s.provider.(HistoryProvider)
		if !ok {
			return Weather{}, fmt.Errorf("%s: %w", s.provider.Name(), ErrHistoryUnsupported)
		}
		w, err = hp.HistoryWeatherByCity(ctx, location, when.Time())
	}
	if err != nil {
		log.Debug("weather lookup failed", zap.Error(err))
		return Weather{}, err
	}

	log.Debug("weather lookup finished")
	return w, nil
}

// GetWeatherByCoordinates fetches current conditions for a lat/lon pair.
func (s *Service) GetWeatherByCoordinates(ctx context.Context, lat, lon float64) (Weather, error) {
	cp, ok := s.provider.(CoordinatesProvider)
	if !ok {
		return Weather{}, fmt.Errorf("%s: %w", s.provider.Name(), ErrCoordinatesUnsupported)
	}

	log := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", s.provider.Name()),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
	)

	w, err := cp.WeatherByCoordinates(ctx, lat, lon)
	if err != nil {
		log.Debug("coordinate lookup failed", zap.Error(err))
		return Weather{}, err
	}
	return w, nil
}
