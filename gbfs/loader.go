package gbfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

// ErrNoStations is returned when the document has no data.stations array.
var ErrNoStations = errors.New("station document has no data.stations")

// ParseStations decodes a station document. Order follows the document.
func ParseStations(r io.Reader) ([]Station, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var feed stationFeed
	if err := dec.Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	if feed.Data == nil || feed.Data.Stations == nil {
		return nil, ErrNoStations
	}
	out := make([]Station, 0, len(feed.Data.Stations))
	for _, rec := range feed.Data.Stations {
		st := Station{
			ShortName: toStringFallback(rec.ShortName, ""),
			StationID: toStringFallback(rec.StationID, ""),
			Name:      rec.Name,
		}
		if lon, err := toFloat(rec.Lon); err == nil {
			st.Lon = lon
		}
		if lat, err := toFloat(rec.Lat); err == nil {
			st.Lat = lat
		}
		if c, err := toInt(rec.Capacity); err == nil {
			st.Capacity = c
		}
		out = append(out, st)
	}
	return out, nil
}

// NewStationIndexFromReader parses a station document into an index.
func NewStationIndexFromReader(r io.Reader) (*StationIndex, error) {
	stations, err := ParseStations(r)
	if err != nil {
		return nil, err
	}
	return NewStationIndex(stations), nil
}

// NewStationIndexFromBytes parses a station document held in memory.
func NewStationIndexFromBytes(data []byte) (*StationIndex, error) {
	return NewStationIndexFromReader(bytes.NewReader(data))
}

// Fetch downloads (or reads) source and indexes it.
func Fetch(ctx context.Context, f *internal.Fetcher, source string) (*StationIndex, error) {
	body, err := f.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	return NewStationIndexFromReader(body)
}

// Utility converters for flexible JSON values
func toStringFallback(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return fallback
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	case json.Number:
		return t.Float64()
	default:
		return 0, errors.New("not a float")
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	case json.Number:
		i64, err := t.Int64()
		return int(i64), err
	default:
		return 0, errors.New("not an int")
	}
}
