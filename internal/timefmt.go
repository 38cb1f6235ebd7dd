package internal

import (
	"time"
)

// Iso8601 formats t in UTC as RFC3339.
func Iso8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return Iso8601(time.Now())
}

// ClockLabel formats a minute of the day the way en-US short time does,
// e.g. 600 -> "10:00 AM". Values past midnight roll over.
func ClockLabel(minutes int) string {
	return time.Date(2000, 1, 1, 0, minutes, 0, 0, time.UTC).Format("3:04 PM")
}
