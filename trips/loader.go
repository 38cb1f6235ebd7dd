package trips

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// ParseTimestamp reads a trip timestamp. Zone-less values are taken in loc;
// values with an explicit offset are converted to loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// ParseTrips decodes a trip CSV. Timestamps without a zone are read in loc
// (time.Local when nil).
func ParseTrips(r io.Reader, loc *time.Location) ([]Trip, error) {
	if loc == nil {
		loc = time.Local
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.ReuseRecord = true

	head, err := csvr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("trip csv: %w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("trip csv header: %w", err)
	}
	idx := func(col string) int {
		for i, h := range head {
			h = strings.TrimPrefix(h, "\ufeff")
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	rideID := idx("ride_id")
	rideable := idx("rideable_type")
	startID := idx("start_station_id")
	endID := idx("end_station_id")
	startedAt := idx("started_at")
	endedAt := idx("ended_at")
	required := []struct {
		name string
		i    int
	}{
		{"start_station_id", startID},
		{"end_station_id", endID},
		{"started_at", startedAt},
		{"ended_at", endedAt},
	}
	for _, col := range required {
		if col.i < 0 {
			return nil, fmt.Errorf("trip csv: %w %s", ErrMissingColumn, col.name)
		}
	}

	field := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}

	out := make([]Trip, 0, 1024)
	for line := 2; ; line++ {
		row, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trip csv line %d: %w", line, err)
		}
		t := Trip{
			RideID:         field(row, rideID),
			RideableType:   field(row, rideable),
			StartStationID: field(row, startID),
			EndStationID:   field(row, endID),
		}
		t.StartedAt, _ = ParseTimestamp(field(row, startedAt), loc)
		t.EndedAt, _ = ParseTimestamp(field(row, endedAt), loc)
		out = append(out, t)
	}
	return out, nil
}

// Fetch downloads (or reads) a trip CSV from source.
func Fetch(ctx context.Context, f *internal.Fetcher, source string, loc *time.Location) ([]Trip, error) {
	body, err := f.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	return ParseTrips(body, loc)
}
