package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// eventTimeLayout is the minute-precision UTC format used by the scoreboard feed.
const eventTimeLayout = "2006-01-02T15:04Z"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseEventTime parses a scoreboard event timestamp, accepting both the
// feed's minute-precision format and full RFC 3339.
func ParseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(eventTimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
