package weather

import "errors"

var (
	// ErrRequest covers network failures and non-2xx upstream responses.
	ErrRequest = errors.New("request error")
	// ErrSerialization is returned when a response or config body does not match its schema.
	ErrSerialization = errors.New("serialization error")
	// ErrFile is returned when the config file is missing or unreadable.
	ErrFile = errors.New("file error")
	// ErrNoWeatherHistory is returned when a historical query comes back empty.
	ErrNoWeatherHistory = errors.New("no weather history")
	// ErrInvalidTimezoneTime is returned for a wall time that does not exist in the requested zone.
	ErrInvalidTimezoneTime = errors.New("invalid timezone time")
	// ErrDateTimeParse is returned when a date argument cannot be parsed.
	ErrDateTimeParse = errors.New("date time parse error")
	// ErrHistoryUnsupported is returned when the provider cannot answer a historical query.
	ErrHistoryUnsupported = errors.New("provider does not support historical lookups")
	// ErrCoordinatesUnsupported is returned when the provider cannot look up by coordinates.
	ErrCoordinatesUnsupported = errors.New("provider does not support coordinate lookups")
)
