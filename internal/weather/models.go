package weather

import (
	"time"
)

// Weather is the provider-independent view of conditions at one place and time.
// All units are fixed regardless of the source API: Celsius, m/s, mm and meters.
type Weather struct {
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperatureC"`
	Wind        Wind    `json:"wind"`
	RainVolume  float64 `json:"rainMm"`

	// Visibility in meters.
	Visibility int `json:"visibilityM"`
	Cloudiness int `json:"cloudinessPercent"`
}

// Wind holds speed in m/s and direction in compass degrees (0 = north).
type Wind struct {
	Speed float64 `json:"speedMs"`
	Deg   int     `json:"deg"`
}

// When selects between the current conditions and a point in the past.
type When struct {
	at time.Time
}

// Now requests current conditions.
func Now() When {
	return When{}
}

// At requests conditions at t.
func At(t time.Time) When {
	return When{at: t.UTC()}
}

// IsNow reports whether w asks for current conditions.
func (w When) IsNow() bool {
	return w.at.IsZero()
}

// Time returns the requested instant; zero for Now.
func (w When) Time() time.Time {
	return w.at
}

func (w When) String() string {
	if w.IsNow() {
		return "now"
	}
	return w.at.Format(time.RFC3339)
}
