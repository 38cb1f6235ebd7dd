package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port            int      `yaml:"port" validate:"gte=0,lte=65535"`
	AllowedOrigins  []string `yaml:"allowedOrigins" validate:"dive,required"`
	CacheTTLSeconds int      `yaml:"cacheTTLSeconds" validate:"gte=0"`
}

// DataConfig points at the station and trip datasets. Sources may be
// http(s) URLs or local file paths.
type DataConfig struct {
	StationsURL   string `yaml:"stationsURL" validate:"required"`
	TripsURL      string `yaml:"tripsURL" validate:"required"`
	StationsCache string `yaml:"stationsCache"` // optional gob snapshot of the parsed station index
	Timezone      string `yaml:"timezone" validate:"omitempty,timezone"`
	TimeoutMS     int    `yaml:"timeoutMS" validate:"gte=0"`
}

// MapConfig describes the initial map view handed to the browser.
type MapConfig struct {
	Style   string     `yaml:"style"`
	Center  [2]float64 `yaml:"center"` // [lon, lat]
	Zoom    float64    `yaml:"zoom" validate:"gte=0,lte=24"`
	MinZoom float64    `yaml:"minZoom" validate:"gte=0,lte=24"`
	MaxZoom float64    `yaml:"maxZoom" validate:"gte=0,lte=24"`
}

// RenderConfig contains marker styling. Radius values are in screen pixels.
type RenderConfig struct {
	MinRadius      float64 `yaml:"minRadius" validate:"gte=0"`
	MaxRadius      float64 `yaml:"maxRadius" validate:"gte=0,gtefield=MinRadius"`
	Fill           string  `yaml:"fill"`
	Stroke         string  `yaml:"stroke"`
	StrokeWidth    float64 `yaml:"strokeWidth" validate:"gte=0"`
	Opacity        float64 `yaml:"opacity" validate:"gte=0,lte=1"`
	DepartureColor string  `yaml:"departureColor"`
	ArrivalColor   string  `yaml:"arrivalColor"`
}

// Overlay is a static GeoJSON line layer drawn under the station markers.
type Overlay struct {
	Name    string  `yaml:"name" validate:"required"`
	Source  string  `yaml:"source" validate:"required"`
	URL     string  `yaml:"url" validate:"required"`
	Color   string  `yaml:"color"`
	Width   float64 `yaml:"width" validate:"gte=0"`
	Opacity float64 `yaml:"opacity" validate:"gte=0,lte=1"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig `yaml:"server"`
	Data     DataConfig   `yaml:"data"`
	Map      MapConfig    `yaml:"map"`
	Render   RenderConfig `yaml:"render"`
	Overlays []Overlay    `yaml:"overlays" validate:"dive"`
}
