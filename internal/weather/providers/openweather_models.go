package providers

// OWCurrentWeather mirrors the body of OpenWeather's /data/2.5/weather endpoint.
// Entries of the history endpoint share this shape, minus the location fields.
type OWCurrentWeather struct {
	Coord      OWCoord       `json:"coord"`
	Weather    []OWCondition `json:"weather"`
	Base       string        `json:"base"`
	Main       OWMain        `json:"main"`
	Visibility int           `json:"visibility"`
	Wind       OWWind        `json:"wind"`
	Rain       *OWRain       `json:"rain,omitempty"`
	Clouds     OWClouds      `json:"clouds"`
	Dt         int64         `json:"dt"`
	Sys        OWSys         `json:"sys"`
	Timezone   int64         `json:"timezone"`
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Cod        int64         `json:"cod"`
}

type OWCoord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type OWCondition struct {
	ID          int64  `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OWMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int64   `json:"pressure"`
	Humidity  int64   `json:"humidity"`
	SeaLevel  *int64  `json:"sea_level,omitempty"`
	GrndLevel *int64  `json:"grnd_level,omitempty"`
}

type OWWind struct {
	Speed float64  `json:"speed"`
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"`
}

// OWRain holds precipitation volume in mm; either window may be missing.
type OWRain struct {
	OneHour   *float64 `json:"1h,omitempty"`
	ThreeHour *float64 `json:"3h,omitempty"`
}

type OWClouds struct {
	All int `json:"all"`
}

type OWSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// OWHistory mirrors the body of OpenWeather's hourly history endpoint.
type OWHistory struct {
	CityID   int64              `json:"city_id"`
	Calctime float64            `json:"calctime"`
	Cnt      int                `json:"cnt"`
	List     []OWCurrentWeather `json:"list"`
}
