package render

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// Style is the static marker styling sent alongside the markers.
type Style struct {
	MinRadius      float64 `json:"min_radius"`
	MaxRadius      float64 `json:"max_radius"`
	Fill           string  `json:"fill"`
	Stroke         string  `json:"stroke"`
	StrokeWidth    float64 `json:"stroke_width"`
	Opacity        float64 `json:"opacity"`
	DepartureColor string  `json:"departure_color"`
	ArrivalColor   string  `json:"arrival_color"`
}

// StyleFromConfig copies the render section of the configuration.
func StyleFromConfig(cfg config.RenderConfig) Style {
	return Style{
		MinRadius:      cfg.MinRadius,
		MaxRadius:      cfg.MaxRadius,
		Fill:           cfg.Fill,
		Stroke:         cfg.Stroke,
		StrokeWidth:    cfg.StrokeWidth,
		Opacity:        cfg.Opacity,
		DepartureColor: cfg.DepartureColor,
		ArrivalColor:   cfg.ArrivalColor,
	}
}

// Marker is one station circle.
type Marker struct {
	ShortName      string  `json:"short_name"`
	Name           string  `json:"name,omitempty"`
	Lon            float64 `json:"lon"`
	Lat            float64 `json:"lat"`
	Arrivals       int     `json:"arrivals"`
	Departures     int     `json:"departures"`
	TotalTraffic   int     `json:"total_traffic"`
	Radius         float64 `json:"radius"`
	DepartureRatio float64 `json:"departure_ratio"`
	Title          string  `json:"title"`
}

// Snapshot is every marker for one time filter.
type Snapshot struct {
	TimeFilter  int      `json:"time_filter"`
	TimeLabel   string   `json:"time_label"`
	AnyTime     bool     `json:"any_time"`
	MaxTraffic  int      `json:"max_traffic"`
	TripCount   int      `json:"trip_count"`
	GeneratedAt string   `json:"generated_at"`
	Style       Style    `json:"style"`
	Markers     []Marker `json:"markers"`
}

// TimeDisplay returns the slider label for minute and whether the
// "any time" hint is shown instead.
func TimeDisplay(minute int) (label string, anyTime bool) {
	if minute == traffic.AnyTime {
		return "", true
	}
	return internal.ClockLabel(minute), false
}

// Title is the marker tooltip.
func Title(t traffic.StationTraffic) string {
	return fmt.Sprintf("%d trips (%d departures, %d arrivals)", t.TotalTraffic, t.Departures, t.Arrivals)
}

// BuildMarkers scales traffic records into markers, keeping their order.
func BuildMarkers(records []traffic.StationTraffic, style Style) []Marker {
	scale := RadiusScale{MaxTraffic: traffic.MaxTraffic(records), Min: style.MinRadius, Max: style.MaxRadius}
	out := make([]Marker, len(records))
	for i, r := range records {
		out[i] = Marker{
			ShortName:      r.ShortName,
			Name:           r.Name,
			Lon:            r.Lon,
			Lat:            r.Lat,
			Arrivals:       r.Arrivals,
			Departures:     r.Departures,
			TotalTraffic:   r.TotalTraffic,
			Radius:         scale.Radius(r.TotalTraffic),
			DepartureRatio: FlowRatio(r.Departures, r.TotalTraffic),
			Title:          Title(r),
		}
	}
	return out
}

// BuildSnapshot wraps the markers for minute with the label and metadata.
func BuildSnapshot(records []traffic.StationTraffic, minute, tripCount int, style Style, now time.Time) *Snapshot {
	label, anyTime := TimeDisplay(minute)
	return &Snapshot{
		TimeFilter:  minute,
		TimeLabel:   label,
		AnyTime:     anyTime,
		MaxTraffic:  traffic.MaxTraffic(records),
		TripCount:   tripCount,
		GeneratedAt: internal.Iso8601(now),
		Style:       style,
		Markers:     BuildMarkers(records, style),
	}
}

// Find returns the marker for shortName.
func (s *Snapshot) Find(shortName string) (Marker, bool) {
	for _, m := range s.Markers {
		if m.ShortName == shortName {
			return m, true
		}
	}
	return Marker{}, false
}
