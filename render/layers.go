package render

import (
	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
)

// Source is a GeoJSON map source.
type Source struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// Layer is a line layer drawn from a Source.
type Layer struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Source string         `json:"source"`
	Paint  map[string]any `json:"paint"`
}

// MapView is everything the browser needs to set the map up before markers load.
type MapView struct {
	Style   string     `json:"style"`
	Center  [2]float64 `json:"center"`
	Zoom    float64    `json:"zoom"`
	MinZoom float64    `json:"minZoom"`
	MaxZoom float64    `json:"maxZoom"`
	Sources []Source   `json:"sources"`
	Layers  []Layer    `json:"layers"`
	Markers Style      `json:"markers"`
}

// BuildMapView derives the map descriptor from configuration. When
// proxyPrefix is set, overlay data points at the service proxy
// (proxyPrefix + overlay name) instead of the upstream URL.
func BuildMapView(cfg config.AppConfig, proxyPrefix string) MapView {
	mv := MapView{
		Style:   cfg.Map.Style,
		Center:  cfg.Map.Center,
		Zoom:    cfg.Map.Zoom,
		MinZoom: cfg.Map.MinZoom,
		MaxZoom: cfg.Map.MaxZoom,
		Sources: make([]Source, 0, len(cfg.Overlays)),
		Layers:  make([]Layer, 0, len(cfg.Overlays)),
		Markers: StyleFromConfig(cfg.Render),
	}
	for _, o := range cfg.Overlays {
		data := o.URL
		if proxyPrefix != "" {
			data = proxyPrefix + o.Name
		}
		mv.Sources = append(mv.Sources, Source{ID: o.Source, Type: "geojson", Data: data})
		mv.Layers = append(mv.Layers, Layer{
			ID:     o.Name,
			Type:   "line",
			Source: o.Source,
			Paint: map[string]any{
				"line-color":   o.Color,
				"line-width":   o.Width,
				"line-opacity": o.Opacity,
			},
		})
	}
	return mv
}
