package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/weather"
)

const weatherAPIBaseURL = "https://api.weatherapi.com/v1"

var _ weather.HistoryProvider = (*WeatherAPIProvider)(nil)

// WeatherAPIProvider implements weather.Provider and weather.HistoryProvider for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewWeatherAPIProvider(client *http.Client, apiKey string, logger *zap.Logger) *WeatherAPIProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: weatherAPIBaseURL,
		client:  newHTTPClient(client),
		circuit: newCircuitBreaker("weatherapi"),
		logger:  logger,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// CurrentWeatherByCity fetches the raw current.json body. WeatherAPI accepts
// "city", "city,country" or "lat,lon" in q, so the query is passed through.
func (p *WeatherAPIProvider) CurrentWeatherByCity(ctx context.Context, city string) (*WACurrentResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", city)
		return newGetRequest(p.baseURL+"/current.json", values)
	}

	var payload WACurrentResponse
	if err := fetchJSON(ctx, p.name, "current", p.client, p.circuit, p.logger, buildRequest, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// HistoryWeather fetches the hourly breakdown of the UTC day containing at.
func (p *WeatherAPIProvider) HistoryWeather(ctx context.Context, city string, at time.Time) (*WAHistoryResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", city)
		values.Set("dt", at.UTC().Format("2006-01-02"))
		return newGetRequest(p.baseURL+"/history.json", values)
	}

	var payload WAHistoryResponse
	if err := fetchJSON(ctx, p.name, "history", p.client, p.circuit, p.logger, buildRequest, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (p *WeatherAPIProvider) WeatherByCity(ctx context.Context, city string) (weather.Weather, error) {
	payload, err := p.CurrentWeatherByCity(ctx, city)
	if err != nil {
		return weather.Weather{}, err
	}
	return NormalizeWeatherAPICurrent(payload), nil
}

func (p *WeatherAPIProvider) HistoryWeatherByCity(ctx context.Context, city string, at time.Time) (weather.Weather, error) {
	payload, err := p.HistoryWeather(ctx, city, at)
	if err != nil {
		return weather.Weather{}, err
	}
	w, err := NormalizeWeatherAPIHistory(payload, at)
	if err != nil {
		return weather.Weather{}, fmt.Errorf("%s history for %q: %w", p.name, city, err)
	}
	return w, nil
}
