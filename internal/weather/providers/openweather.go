package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/weather"
)

const (
	openWeatherBaseURL    = "https://api.openweathermap.org/data/2.5/weather"
	openWeatherHistoryURL = "https://history.openweathermap.org/data/2.5/history/city"
)

var (
	_ weather.HistoryProvider     = (*OpenWeatherProvider)(nil)
	_ weather.CoordinatesProvider = (*OpenWeatherProvider)(nil)
)

// OpenWeatherProvider implements weather.Provider, weather.HistoryProvider and
// weather.CoordinatesProvider for OpenWeatherMap.
type OpenWeatherProvider struct {
	name       string
	apiKey     string
	baseURL    string
	historyURL string
	client     *http.Client
	circuit    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, logger *zap.Logger) *OpenWeatherProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenWeatherProvider{
		name:       "openweathermap",
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		historyURL: openWeatherHistoryURL,
		client:     newHTTPClient(client),
		circuit:    newCircuitBreaker("openweather"),
		logger:     logger,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// values returns the query parameters every OpenWeather call carries.
func (p *OpenWeatherProvider) values() url.Values {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	return values
}

// CurrentWeatherByCoordinates fetches the raw current-weather body for a lat/lon pair.
func (p *OpenWeatherProvider) CurrentWeatherByCoordinates(ctx context.Context, lat, lon float64) (*OWCurrentWeather, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := p.values()
		values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		return newGetRequest(p.baseURL, values)
	}

	var payload OWCurrentWeather
	if err := fetchJSON(ctx, p.name, "current_coordinates", p.client, p.circuit, p.logger, buildRequest, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CurrentWeatherByCity fetches the raw current-weather body for a free-text city query.
func (p *OpenWeatherProvider) CurrentWeatherByCity(ctx context.Context, city string) (*OWCurrentWeather, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := p.values()
		values.Set("q", city)
		return newGetRequest(p.baseURL, values)
	}

	var payload OWCurrentWeather
	if err := fetchJSON(ctx, p.name, "current", p.client, p.circuit, p.logger, buildRequest, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// HistoryWeather fetches the hourly history series starting at at.
func (p *OpenWeatherProvider) HistoryWeather(ctx context.Context, city string, at time.Time) (*OWHistory, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := p.values()
		values.Set("q", city)
		values.Set("type", "hour")
		values.Set("start", strconv.FormatInt(at.Unix(), 10))
		values.Set("cnt", "1")
		return newGetRequest(p.historyURL, values)
	}

	var payload OWHistory
	if err := fetchJSON(ctx, p.name, "history", p.client, p.circuit, p.logger, buildRequest, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (p *OpenWeatherProvider) WeatherByCity(ctx context.Context, city string) (weather.Weather, error) {
	payload, err := p.CurrentWeatherByCity(ctx, city)
	if err != nil {
		return weather.Weather{}, err
	}
	return NormalizeOpenWeatherCurrent(payload), nil
}

func (p *OpenWeatherProvider) WeatherByCoordinates(ctx context.Context, lat, lon float64) (weather.Weather, error) {
	payload, err := p.CurrentWeatherByCoordinates(ctx, lat, lon)
	if err != nil {
		return weather.Weather{}, err
	}
	return NormalizeOpenWeatherCurrent(payload), nil
}

func (p *OpenWeatherProvider) HistoryWeatherByCity(ctx context.Context, city string, at time.Time) (weather.Weather, error) {
	payload, err := p.HistoryWeather(ctx, city, at)
	if err != nil {
		return weather.Weather{}, err
	}
	w, err := NormalizeOpenWeatherHistory(payload)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%s history for %q: %w", p.name, city, err)
	}
	return w, nil
}
