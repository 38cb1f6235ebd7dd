package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal/testutil"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/session"
)

func TestLoadConfig_FallsBackToFlags(t *testing.T) {
	cfg, err := loadConfig("", "s.json", "t.csv")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Data.StationsURL != "s.json" || cfg.Server.Port != config.DefaultPort {
		t.Errorf("cfg = %+v", cfg.Data)
	}

	if _, err := loadConfig("", "s.json", ""); err == nil {
		t.Error("expected error without config file or both sources")
	}
	if _, err := loadConfig("/nonexistent/config.yml", "s.json", "t.csv"); err == nil {
		t.Error("an explicit config path must exist")
	}
}

func TestLoadConfig_BrokenFileIsNotSkipped(t *testing.T) {
	origDir, _ := os.Getwd()
	origConfig := config.Config
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() {
		config.Config = origConfig
		_ = os.Chdir(origDir)
	}()

	tests := map[string]string{
		"invalid yaml":      "data: [[[",
		"failed validation": "server:\n  port: -1\ndata:\n  stationsURL: s\n  tripsURL: t\n",
	}
	for name, body := range tests {
		if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig("", "s.json", "t.csv"); err == nil {
			t.Errorf("%s: a broken config.yml must not fall back to defaults", name)
		}
	}
}

func TestOneshot(t *testing.T) {
	data := session.NewDataset(testutil.LoadStations(t), testutil.LoadTrips(t))
	cfg := config.Defaults("s", "t")

	if err := oneshot(data, cfg, 600, "geojson", ""); err != nil {
		t.Errorf("oneshot geojson: %v", err)
	}
	if err := oneshot(data, cfg, -1, "json", "A32000"); err != nil {
		t.Errorf("oneshot station: %v", err)
	}

	tests := []struct {
		name    string
		minute  int
		format  string
		station string
	}{
		{"minute too large", 1440, "json", ""},
		{"minute too small", -2, "json", ""},
		{"unknown format", 600, "xml", ""},
		{"unknown station", 600, "json", "X99999"},
	}
	for _, tt := range tests {
		if err := oneshot(data, cfg, tt.minute, tt.format, tt.station); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
