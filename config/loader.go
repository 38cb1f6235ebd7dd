package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPort is used when server.port is missing or zero.
const DefaultPort = 16181

// DefaultTimezone is the zone trip timestamps are read in when data.timezone is empty.
const DefaultTimezone = "America/New_York"

var searchPaths = []string{"config.yml", "./golang/config.yml"}

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	var data []byte
	var err error
	for _, p := range searchPaths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadAppConfigFromPath loads the configuration from an explicit file.
func LoadAppConfigFromPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Config = cfg
	return nil
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Map.MinZoom > cfg.Map.MaxZoom {
		return AppConfig{}, errors.New("map.minZoom must not exceed map.maxZoom")
	}
	if cfg.Map.Zoom < cfg.Map.MinZoom || cfg.Map.Zoom > cfg.Map.MaxZoom {
		return AppConfig{}, fmt.Errorf("map.zoom %g outside [%g, %g]", cfg.Map.Zoom, cfg.Map.MinZoom, cfg.Map.MaxZoom)
	}
	seen := map[string]bool{}
	for _, o := range cfg.Overlays {
		if seen[o.Name] {
			return AppConfig{}, fmt.Errorf("duplicate overlay name %q", o.Name)
		}
		seen[o.Name] = true
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Data.Timezone == "" {
		cfg.Data.Timezone = DefaultTimezone
	}
	if cfg.Map.Style == "" {
		cfg.Map.Style = "mapbox://styles/mapbox/streets-v12"
	}
	if cfg.Map.Center == [2]float64{} {
		cfg.Map.Center = [2]float64{-71.09415, 42.36027}
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 12
	}
	if cfg.Map.MinZoom == 0 {
		cfg.Map.MinZoom = 5
	}
	if cfg.Map.MaxZoom == 0 {
		cfg.Map.MaxZoom = 18
	}
	if cfg.Render.MaxRadius == 0 {
		cfg.Render.MaxRadius = 25
	}
	if cfg.Render.Fill == "" {
		cfg.Render.Fill = "steelblue"
	}
	if cfg.Render.Stroke == "" {
		cfg.Render.Stroke = "white"
	}
	if cfg.Render.StrokeWidth == 0 {
		cfg.Render.StrokeWidth = 1
	}
	if cfg.Render.Opacity == 0 {
		cfg.Render.Opacity = 0.8
	}
	if cfg.Render.DepartureColor == "" {
		cfg.Render.DepartureColor = "steelblue"
	}
	if cfg.Render.ArrivalColor == "" {
		cfg.Render.ArrivalColor = "darkorange"
	}
	for i := range cfg.Overlays {
		o := &cfg.Overlays[i]
		if o.Source == "" {
			o.Source = o.Name + "_route"
		}
		if o.Color == "" {
			o.Color = "hsla(120, 25%, 41%, 1.00)"
		}
		if o.Width == 0 {
			o.Width = 5
		}
		if o.Opacity == 0 {
			o.Opacity = 0.6
		}
	}
}

// Location returns the time zone trip timestamps are interpreted in.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Data.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Defaults returns a configuration with only the two data sources set and
// every other value defaulted, for running without a config file.
func Defaults(stationsURL, tripsURL string) AppConfig {
	cfg := AppConfig{Data: DataConfig{StationsURL: stationsURL, TripsURL: tripsURL}}
	applyDefaults(&cfg)
	return cfg
}
