package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

var validate = validator.New()

type trafficQuery struct {
	Time   int    `validate:"gte=-1,lte=1439"`
	Format string `validate:"omitempty,oneof=json geojson pb"`
}

type positionsQuery struct {
	Lon    float64 `validate:"gte=-180,lte=180"`
	Lat    float64 `validate:"gte=-85.051129,lte=85.051129"`
	Zoom   float64 `validate:"gte=0,lte=24"`
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
	Event  string  `validate:"omitempty,oneof=move zoom resize moveend"`
}

func parseTrafficQuery(q url.Values) (trafficQuery, error) {
	out := trafficQuery{Time: traffic.AnyTime, Format: strings.ToLower(q.Get("format"))}
	if s := q.Get("time"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return out, fmt.Errorf("time: %q is not a minute of the day", s)
		}
		out.Time = v
	}
	if err := validate.Struct(out); err != nil {
		return out, err
	}
	return out, nil
}

func parsePositionsQuery(q url.Values, m config.MapConfig) (positionsQuery, error) {
	out := positionsQuery{
		Lon:   m.Center[0],
		Lat:   m.Center[1],
		Zoom:  m.Zoom,
		Event: strings.ToLower(q.Get("event")),
	}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"lon", &out.Lon},
		{"lat", &out.Lat},
		{"zoom", &out.Zoom},
		{"width", &out.Width},
		{"height", &out.Height},
	}
	for _, f := range fields {
		s := q.Get(f.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, fmt.Errorf("%s: %q is not a number", f.name, s)
		}
		*f.dst = v
	}
	if err := validate.Struct(out); err != nil {
		return out, err
	}
	if out.Zoom < m.MinZoom || out.Zoom > m.MaxZoom {
		return out, fmt.Errorf("zoom %g outside [%g, %g]", out.Zoom, m.MinZoom, m.MaxZoom)
	}
	return out, nil
}
