package weather

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted format for historical date arguments.
const DateLayout = "2006-01-02 15:04:05"

// ParseWhen turns a CLI date argument into a When. "now" (or an empty string)
// selects current conditions; anything else must match DateLayout and is
// interpreted in loc (UTC when loc is nil).
func ParseWhen(s string, loc *time.Location) (When, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return Now(), nil
	}
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return When{}, fmt.Errorf("%w: %v", ErrDateTimeParse, err)
	}

	// time.ParseInLocation silently shifts wall times that fall in a DST gap.
	if t.Format(DateLayout) != s {
		return When{}, fmt.Errorf("%w: %q does not exist in %s", ErrInvalidTimezoneTime, s, loc)
	}

	return At(t), nil
}
