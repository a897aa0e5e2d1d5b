package utils

import "time"

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatUnix renders an epoch-seconds value as RFC3339 UTC.
// Returns empty for zero so callers can render "never" states.
func FormatUnix(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
