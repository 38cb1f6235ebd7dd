// Package session loads the station and trip datasets once and answers
// traffic queries over them.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/render"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/trips"
)

var (
	stationsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bikeshare_stations_loaded",
		Help: "Number of stations in the current dataset",
	})
	tripsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bikeshare_trips_loaded",
		Help: "Number of trips in the current dataset",
	})
)

func init() {
	prometheus.MustRegister(stationsLoaded, tripsLoaded)
}

// Sources says where the datasets come from.
type Sources struct {
	Stations      string
	Trips         string
	StationsCache string
	Location      *time.Location
}

// Dataset is the immutable base data of a session. Methods only read it,
// so one Dataset can serve concurrent requests.
type Dataset struct {
	Stations *gbfs.StationIndex
	Trips    []trips.Trip
	LoadedAt time.Time
}

// NewDataset wraps already loaded data.
func NewDataset(stations *gbfs.StationIndex, ts []trips.Trip) *Dataset {
	return &Dataset{Stations: stations, Trips: ts, LoadedAt: time.Now()}
}

// Load fetches stations, then trips. Either failure aborts the load.
func Load(ctx context.Context, f *internal.Fetcher, src Sources) (*Dataset, error) {
	start := time.Now()
	stations, err := loadStations(ctx, f, src)
	if err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}
	log.Printf("loaded %d stations from %s", stations.Len(), src.Stations)

	ts, err := trips.Fetch(ctx, f, src.Trips, src.Location)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	log.Printf("loaded %d trips from %s in %s", len(ts), src.Trips, time.Since(start).Round(time.Millisecond))

	stationsLoaded.Set(float64(stations.Len()))
	tripsLoaded.Set(float64(len(ts)))
	return NewDataset(stations, ts), nil
}

func loadStations(ctx context.Context, f *internal.Fetcher, src Sources) (*gbfs.StationIndex, error) {
	if src.StationsCache != "" {
		if idx, err := gbfs.DeserializeIndexFromFile(src.StationsCache); err == nil {
			log.Printf("station index read from cache %s", src.StationsCache)
			return idx, nil
		}
	}
	idx, err := gbfs.Fetch(ctx, f, src.Stations)
	if err != nil {
		return nil, err
	}
	if src.StationsCache != "" {
		if err := gbfs.SerializeIndexToFile(idx, src.StationsCache); err != nil {
			log.Printf("station cache write failed: %v", err)
		}
	}
	return idx, nil
}

// Traffic computes station traffic for minute (traffic.AnyTime for all
// trips) and returns it with the number of trips that were counted.
func (d *Dataset) Traffic(minute int) ([]traffic.StationTraffic, int) {
	filtered := traffic.FilterTripsByTime(d.Trips, minute)
	return traffic.ComputeStationTraffic(d.Stations.All(), filtered), len(filtered)
}

// Snapshot builds the rendered markers for minute.
func (d *Dataset) Snapshot(minute int, style render.Style, now time.Time) *render.Snapshot {
	records, n := d.Traffic(minute)
	return render.BuildSnapshot(records, minute, n, style, now)
}
