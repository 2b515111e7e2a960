package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

func newTestOpenWeather(t *testing.T, handler http.HandlerFunc) *OpenWeatherProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenWeatherProvider(srv.Client(), "secret", nil)
	p.baseURL = srv.URL + "/data/2.5/weather"
	p.historyURL = srv.URL + "/data/2.5/history/city"
	return p
}

func TestOpenWeatherCurrentByCity(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("appid") != "secret" || q.Get("units") != "metric" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(owCurrentBody))
	})

	got, err := p.WeatherByCity(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location != "London, GB" || got.RainVolume != 2.5 || got.Visibility != 10000 {
		t.Fatalf("unexpected weather %+v", got)
	}
}

func TestOpenWeatherCurrentByCoordinates(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "49.987503" || q.Get("lon") != "36.285374" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if q.Has("q") {
			t.Errorf("coordinate lookup should not send q")
		}
		w.Write([]byte(owCurrentBody))
	})

	if _, err := p.WeatherByCoordinates(context.Background(), 49.987503, 36.285374); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenWeatherNotFoundIsRequestError(t *testing.T) {
	calls := 0
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := p.WeatherByCity(context.Background(), "Atlantis")
	if !errors.Is(err, weather.ErrRequest) {
		t.Fatalf("expected ErrRequest, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestOpenWeatherMalformedBodyIsSerializationError(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": "not an object"}`))
	})

	_, err := p.WeatherByCity(context.Background(), "London")
	if !errors.Is(err, weather.ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}

func TestOpenWeatherHistory(t *testing.T) {
	at := time.Unix(1700000000, 0)

	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/history/city" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start") != "1700000000" || q.Get("type") != "hour" || q.Get("q") != "London" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"cnt":1,"list":[` + owCurrentBody + `]}`))
	})

	got, err := p.HistoryWeatherByCity(context.Background(), "London", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Description != "light rain" {
		t.Fatalf("unexpected description %q", got.Description)
	}
}

func TestOpenWeatherHistoryEmpty(t *testing.T) {
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cnt":0,"list":[]}`))
	})

	_, err := p.HistoryWeatherByCity(context.Background(), "London", time.Now())
	if !errors.Is(err, weather.ErrNoWeatherHistory) {
		t.Fatalf("expected ErrNoWeatherHistory, got %v", err)
	}
}

func TestOpenWeatherMissingAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(nil, "", nil)
	if _, err := p.WeatherByCity(context.Background(), "London"); !errors.Is(err, errMissingAPIKey) {
		t.Fatalf("expected errMissingAPIKey, got %v", err)
	}
}

func TestOpenWeatherClientErrorsKeepBreakerClosed(t *testing.T) {
	calls := 0
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("q") != "London" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Write([]byte(owCurrentBody))
	})

	for i := 0; i < 10; i++ {
		if _, err := p.WeatherByCity(context.Background(), "Londn"); !errors.Is(err, weather.ErrRequest) {
			t.Fatalf("expected ErrRequest, got %v", err)
		}
	}

	got, err := p.WeatherByCity(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location != "London, GB" {
		t.Fatalf("expected London, GB, got %q", got.Location)
	}
	if calls != 11 {
		t.Fatalf("expected 11 upstream calls, got %d", calls)
	}
}

func TestOpenWeatherServerErrorsOpenBreaker(t *testing.T) {
	calls := 0
	p := newTestOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 6; i++ {
		if _, err := p.WeatherByCity(context.Background(), "London"); !errors.Is(err, weather.ErrRequest) {
			t.Fatalf("expected ErrRequest, got %v", err)
		}
	}

	_, err := p.WeatherByCity(context.Background(), "London")
	if !errors.Is(err, weather.ErrRequest) {
		t.Fatalf("expected ErrRequest, got %v", err)
	}
	if calls != 6 {
		t.Fatalf("expected the open breaker to short-circuit, got %d upstream calls", calls)
	}
}
