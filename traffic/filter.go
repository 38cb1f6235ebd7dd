package traffic

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/trips"
)

// AnyTime disables time filtering.
const AnyTime = -1

// WindowMinutes is the half-width of the time-of-day window, inclusive.
const WindowMinutes = 60

// MinutesPerDay bounds valid filter values to [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// MinutesSinceMidnight returns hour*60+minute in t's location. It reports
// false for the zero time, which is what an unparsable timestamp becomes.
func MinutesSinceMidnight(t time.Time) (int, bool) {
	if t.IsZero() {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FilterTripsByTime keeps trips whose start or end time of day lies within
// WindowMinutes of minute. AnyTime returns ts itself. ts is not modified.
func FilterTripsByTime(ts []trips.Trip, minute int) []trips.Trip {
	if minute == AnyTime {
		return ts
	}
	out := make([]trips.Trip, 0, len(ts)/4)
	for _, t := range ts {
		if nearMinute(t.StartedAt, minute) || nearMinute(t.EndedAt, minute) {
			out = append(out, t)
		}
	}
	return out
}

func nearMinute(t time.Time, minute int) bool {
	m, ok := MinutesSinceMidnight(t)
	if !ok {
		return false
	}
	d := m - minute
	if d < 0 {
		d = -d
	}
	return d <= WindowMinutes
}
