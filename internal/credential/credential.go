// Package credential holds the single persisted record: which provider the
// user configured and the API key for it.
package credential

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

var validate = validator.New()

// Kind identifies the provider variant of a Credential.
type Kind int

const (
	KindUnknown Kind = iota
	KindOpenWeather
	KindWeatherAPI
)

func (k Kind) String() string {
	switch k {
	case KindOpenWeather:
		return "open-weather"
	case KindWeatherAPI:
		return "weather-api"
	default:
		return "unknown"
	}
}

// ParseKind maps a CLI provider name onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "open-weather", "openweather":
		return KindOpenWeather, nil
	case "weather-api", "weatherapi":
		return KindWeatherAPI, nil
	default:
		return KindUnknown, fmt.Errorf("unknown provider %q (want open-weather or weather-api)", name)
	}
}

// APIKey is the payload of every variant.
type APIKey struct {
	APIKey string `json:"api_key" validate:"required"`
}

// Credential is a tagged union: exactly one field is non-nil.
// It encodes as {"OpenWeather":{"api_key":"..."}} or {"WeatherApi":{"api_key":"..."}}.
type Credential struct {
	OpenWeather *APIKey `json:"OpenWeather,omitempty"`
	WeatherAPI  *APIKey `json:"WeatherApi,omitempty"`
}

// New builds a Credential of the given kind.
func New(kind Kind, apiKey string) (Credential, error) {
	key := &APIKey{APIKey: strings.TrimSpace(apiKey)}
	var c Credential
	switch kind {
	case KindOpenWeather:
		c.OpenWeather = key
	case KindWeatherAPI:
		c.WeatherAPI = key
	default:
		return Credential{}, fmt.Errorf("unknown provider kind %d", kind)
	}
	if err := c.validate(); err != nil {
		return Credential{}, err
	}
	return c, nil
}

// Kind reports which variant is populated.
func (c Credential) Kind() Kind {
	switch {
	case c.OpenWeather != nil && c.WeatherAPI == nil:
		return KindOpenWeather
	case c.WeatherAPI != nil && c.OpenWeather == nil:
		return KindWeatherAPI
	default:
		return KindUnknown
	}
}

// Key returns the API key of the populated variant.
func (c Credential) Key() string {
	switch c.Kind() {
	case KindOpenWeather:
		return c.OpenWeather.APIKey
	case KindWeatherAPI:
		return c.WeatherAPI.APIKey
	default:
		return ""
	}
}

func (c Credential) validate() error {
	var active *APIKey
	switch c.Kind() {
	case KindOpenWeather:
		active = c.OpenWeather
	case KindWeatherAPI:
		active = c.WeatherAPI
	default:
		return fmt.Errorf("%w: credential must hold exactly one provider", weather.ErrSerialization)
	}
	if err := validate.Struct(active); err != nil {
		return fmt.Errorf("%w: %v", weather.ErrSerialization, err)
	}
	return nil
}

// FromFile reads and validates the credential stored at path.
func FromFile(path string) (Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: read %s: %v", weather.ErrFile, path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Credential
	if err := dec.Decode(&c); err != nil {
		return Credential{}, fmt.Errorf("%w: parse %s: %v", weather.ErrSerialization, path, err)
	}
	if err := c.validate(); err != nil {
		return Credential{}, err
	}
	return c, nil
}

// Save writes c to path, replacing whatever was there.
func Save(path string, c Credential) error {
	if err := c.validate(); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %v", weather.ErrSerialization, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create config dir: %v", weather.ErrFile, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", weather.ErrFile, path, err)
	}
	return nil
}

// BuildProvider returns the client matching the populated variant.
func (c Credential) BuildProvider(client *http.Client, logger *zap.Logger) (weather.Provider, error) {
	switch c.Kind() {
	case KindOpenWeather:
		return providers.NewOpenWeatherProvider(client, c.OpenWeather.APIKey, logger), nil
	case KindWeatherAPI:
		return providers.NewWeatherAPIProvider(client, c.WeatherAPI.APIKey, logger), nil
	default:
		return nil, fmt.Errorf("%w: credential must hold exactly one provider", weather.ErrSerialization)
	}
}
