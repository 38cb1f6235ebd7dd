package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/overlay"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/render"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/server"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/session"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "", "config file (default: search config.yml, ./golang/config.yml)")
	stations := flag.String("stations", "", "station JSON URL or path (overrides config)")
	tripsSrc := flag.String("trips", "", "trip CSV URL or path (overrides config)")
	minute := flag.Int("time", traffic.AnyTime, "minute of the day to filter on, -1 for any time (oneshot)")
	format := flag.String("format", render.FormatJSON, "json|geojson|pb (oneshot)")
	station := flag.String("station", "", "print a single station by short_name (oneshot)")
	flag.Parse()

	internal.InitLogging()
	cfg, err := loadConfig(*configPath, *stations, *tripsSrc)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *stations != "" {
		cfg.Data.StationsURL = *stations
	}
	if *tripsSrc != "" {
		cfg.Data.TripsURL = *tripsSrc
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	fetcher := internal.NewFetcher(time.Duration(cfg.Data.TimeoutMS) * time.Millisecond)
	data, err := session.Load(ctx, fetcher, session.Sources{
		Stations:      cfg.Data.StationsURL,
		Trips:         cfg.Data.TripsURL,
		StationsCache: cfg.Data.StationsCache,
		Location:      cfg.Location(),
	})
	stop()
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}

	switch *mode {
	case "serve":
		ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
		srv := server.New(cfg, data, overlay.NewStore(fetcher, cfg.Overlays, ttl))
		srv.Start()
		srv.HandleGracefulShutdown()
	case "oneshot":
		if err := oneshot(data, cfg, *minute, *format, *station); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func loadConfig(path, stations, trips string) (config.AppConfig, error) {
	var err error
	if path != "" {
		err = config.LoadAppConfigFromPath(path)
	} else {
		err = config.LoadAppConfig()
	}
	if err == nil {
		return config.Config, nil
	}
	if path == "" && stations != "" && trips != "" && errors.Is(err, fs.ErrNotExist) {
		log.Printf("no config file (%v), using defaults", err)
		return config.Defaults(stations, trips), nil
	}
	return config.AppConfig{}, err
}

func oneshot(data *session.Dataset, cfg config.AppConfig, minute int, format, station string) error {
	if minute < traffic.AnyTime || minute >= traffic.MinutesPerDay {
		return fmt.Errorf("time %d outside [-1, %d]", minute, traffic.MinutesPerDay-1)
	}
	snap := data.Snapshot(minute, render.StyleFromConfig(cfg.Render), time.Now())
	if station != "" {
		m, ok := snap.Find(station)
		if !ok {
			return fmt.Errorf("station %q not found", station)
		}
		return json.NewEncoder(os.Stdout).Encode(m)
	}
	buf, _, err := render.Encode(snap, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(buf)
	return err
}
