package providers

import (
	"fmt"
	"time"

	"github.com/i474232898/weather-cli/internal/weather"
)

// kphPerMs converts km/h to m/s.
const kphPerMs = 3.6

// NormalizeOpenWeatherCurrent maps an OpenWeather current-weather body onto Weather.
// The request asks for metric units, so temperature, wind and visibility pass through.
func NormalizeOpenWeatherCurrent(w *OWCurrentWeather) weather.Weather {
	rain := 0.0
	if w.Rain != nil && w.Rain.OneHour != nil {
		rain = *w.Rain.OneHour
	}

	description := ""
	if len(w.Weather) > 0 {
		description = w.Weather[0].Description
	}

	return weather.Weather{
		Location:    fmt.Sprintf("%s, %s", w.Name, w.Sys.Country),
		Description: description,
		Temperature: w.Main.Temp,
		Wind: weather.Wind{
			Speed: w.Wind.Speed,
			Deg:   w.Wind.Deg,
		},
		RainVolume: rain,
		Visibility: w.Visibility,
		Cloudiness: w.Clouds.All,
	}
}

// NormalizeOpenWeatherHistory maps the first entry of a history series.
func NormalizeOpenWeatherHistory(h *OWHistory) (weather.Weather, error) {
	if len(h.List) == 0 {
		return weather.Weather{}, weather.ErrNoWeatherHistory
	}
	return NormalizeOpenWeatherCurrent(&h.List[0]), nil
}

// NormalizeWeatherAPICurrent maps a WeatherAPI current-weather body onto Weather.
func NormalizeWeatherAPICurrent(r *WACurrentResponse) weather.Weather {
	return weatherAPIConditions(r.Location, r.Current.WAConditions)
}

// NormalizeWeatherAPIHistory picks the hour of the first forecast day closest to at.
func NormalizeWeatherAPIHistory(r *WAHistoryResponse, at time.Time) (weather.Weather, error) {
	if len(r.Forecast.ForecastDay) == 0 {
		return weather.Weather{}, weather.ErrNoWeatherHistory
	}
	hour, ok := closestHour(r.Forecast.ForecastDay[0].Hour, at.Unix())
	if !ok {
		return weather.Weather{}, weather.ErrNoWeatherHistory
	}
	return weatherAPIConditions(r.Location, hour.WAConditions), nil
}

// closestHour returns the entry whose epoch is nearest ts. Ties keep the earlier entry.
func closestHour(hours []WAHour, ts int64) (WAHour, bool) {
	if len(hours) == 0 {
		return WAHour{}, false
	}

	best := 0
	bestDiff := absDiff(hours[0].TimeEpoch, ts)
	for i := 1; i < len(hours); i++ {
		if d := absDiff(hours[i].TimeEpoch, ts); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return hours[best], true
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func weatherAPIConditions(loc WALocation, c WAConditions) weather.Weather {
	return weather.Weather{
		Location:    fmt.Sprintf("%s, %s, %s", loc.Name, loc.Region, loc.Country),
		Description: c.Condition.Text,
		Temperature: c.TempC,
		Wind: weather.Wind{
			Speed: c.WindKph / kphPerMs,
			Deg:   c.WindDegree,
		},
		RainVolume: c.PrecipMm,
		// Truncates fractional meters.
		Visibility: int(c.VisKm * 1000),
		Cloudiness: c.Cloud,
	}
}
