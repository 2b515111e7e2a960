package providers

// WACurrentResponse mirrors the body of WeatherAPI's /v1/current.json endpoint.
type WACurrentResponse struct {
	Location WALocation `json:"location"`
	Current  WACurrent  `json:"current"`
}

// WAHistoryResponse mirrors the body of WeatherAPI's /v1/history.json endpoint.
type WAHistoryResponse struct {
	Location WALocation `json:"location"`
	Forecast WAForecast `json:"forecast"`
}

type WALocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type WACondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// WAConditions holds the fields shared by the "current" block and each hourly entry.
type WAConditions struct {
	TempC      float64     `json:"temp_c"`
	TempF      float64     `json:"temp_f"`
	IsDay      int         `json:"is_day"`
	Condition  WACondition `json:"condition"`
	WindMph    float64     `json:"wind_mph"`
	WindKph    float64     `json:"wind_kph"`
	WindDegree int         `json:"wind_degree"`
	WindDir    string      `json:"wind_dir"`
	PressureMb float64     `json:"pressure_mb"`
	PrecipMm   float64     `json:"precip_mm"`
	Humidity   int         `json:"humidity"`
	Cloud      int         `json:"cloud"`
	FeelslikeC float64     `json:"feelslike_c"`
	VisKm      float64     `json:"vis_km"`
	UV         float64     `json:"uv"`
	GustKph    float64     `json:"gust_kph"`
}

type WACurrent struct {
	LastUpdatedEpoch int64  `json:"last_updated_epoch"`
	LastUpdated      string `json:"last_updated"`
	WAConditions
}

type WAForecast struct {
	ForecastDay []WAForecastDay `json:"forecastday"`
}

type WAForecastDay struct {
	Date      string   `json:"date"`
	DateEpoch int64    `json:"date_epoch"`
	Hour      []WAHour `json:"hour"`
}

type WAHour struct {
	TimeEpoch int64  `json:"time_epoch"`
	Time      string `json:"time"`
	WAConditions
}
