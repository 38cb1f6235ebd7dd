package traffic

import (
	"reflect"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal/testutil"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/trips"
)

func trip(start, end string) trips.Trip {
	return trips.Trip{StartStationID: start, EndStationID: end}
}

func TestComputeStationTraffic_Scenarios(t *testing.T) {
	stations := []gbfs.Station{{ShortName: "A"}, {ShortName: "B"}}

	tests := []struct {
		name  string
		trips []trips.Trip
		want  map[string][3]int // arrivals, departures, total
	}{
		{
			name:  "single trip",
			trips: []trips.Trip{trip("A", "B")},
			want:  map[string][3]int{"A": {0, 1, 1}, "B": {1, 0, 1}},
		},
		{
			name:  "round trip at one station",
			trips: []trips.Trip{trip("A", "A")},
			want:  map[string][3]int{"A": {1, 1, 2}, "B": {0, 0, 0}},
		},
		{
			name:  "unknown end station",
			trips: []trips.Trip{trip("A", "Z")},
			want:  map[string][3]int{"A": {0, 1, 1}, "B": {0, 0, 0}},
		},
		{
			name:  "no trips",
			trips: nil,
			want:  map[string][3]int{"A": {0, 0, 0}, "B": {0, 0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStationTraffic(stations, tt.trips)
			if len(got) != len(stations) {
				t.Fatalf("got %d records, want %d", len(got), len(stations))
			}
			for i, rec := range got {
				if rec.ShortName != stations[i].ShortName {
					t.Errorf("record %d is %s, want station order", i, rec.ShortName)
				}
				w := tt.want[rec.ShortName]
				if rec.Arrivals != w[0] || rec.Departures != w[1] || rec.TotalTraffic != w[2] {
					t.Errorf("%s: got arr=%d dep=%d total=%d, want %v",
						rec.ShortName, rec.Arrivals, rec.Departures, rec.TotalTraffic, w)
				}
			}
		})
	}
}

func TestComputeStationTraffic_Fixture(t *testing.T) {
	idx := testutil.LoadStations(t)
	ts := testutil.LoadTrips(t)

	got := TrafficByStation(ComputeStationTraffic(idx.All(), ts))
	want := map[string][3]int{
		"A32000": {2, 4, 6},
		"A32010": {3, 2, 5},
		"B32006": {1, 1, 2},
		"D32000": {0, 0, 0},
	}
	for name, w := range want {
		rec, ok := got[name]
		if !ok {
			t.Fatalf("missing record for %s", name)
		}
		if rec.Arrivals != w[0] || rec.Departures != w[1] || rec.TotalTraffic != w[2] {
			t.Errorf("%s: got %d/%d/%d, want %v", name, rec.Arrivals, rec.Departures, rec.TotalTraffic, w)
		}
	}
	if MaxTraffic(ComputeStationTraffic(idx.All(), ts)) != 6 {
		t.Error("max traffic should be 6")
	}
	t.Logf("✓ Aggregated %d trips over %d stations", len(ts), idx.Len())
}

// Every trip whose endpoints are both known contributes exactly two counts.
func TestComputeStationTraffic_SumMatchesKnownEndpoints(t *testing.T) {
	idx := testutil.LoadStations(t)
	ts := testutil.LoadTrips(t)

	want := 0
	for _, tr := range ts {
		if idx.Has(tr.StartStationID) {
			want++
		}
		if idx.Has(tr.EndStationID) {
			want++
		}
	}

	sum := 0
	for _, rec := range ComputeStationTraffic(idx.All(), ts) {
		if rec.TotalTraffic != rec.Arrivals+rec.Departures {
			t.Errorf("%s: total %d != %d + %d", rec.ShortName, rec.TotalTraffic, rec.Arrivals, rec.Departures)
		}
		sum += rec.TotalTraffic
	}
	if sum != want {
		t.Errorf("sum of totals = %d, want %d", sum, want)
	}
}

func TestComputeStationTraffic_DoesNotModifyInputs(t *testing.T) {
	stations := []gbfs.Station{{ShortName: "A", Name: "a", Lon: 1, Lat: 2}, {ShortName: "B"}}
	ts := []trips.Trip{
		{StartStationID: "A", EndStationID: "B", StartedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
	}
	stationsCopy := append([]gbfs.Station(nil), stations...)
	tripsCopy := append([]trips.Trip(nil), ts...)

	first := ComputeStationTraffic(stations, ts)
	second := ComputeStationTraffic(stations, nil)

	if !reflect.DeepEqual(stations, stationsCopy) {
		t.Error("stations were modified")
	}
	if !reflect.DeepEqual(ts, tripsCopy) {
		t.Error("trips were modified")
	}
	if first[0].Departures != 1 {
		t.Error("first result should keep its counts after a later call")
	}
	if second[0].Departures != 0 {
		t.Error("second call should start from zero")
	}
}

func TestTrafficByStation_FirstDuplicateWins(t *testing.T) {
	recs := []StationTraffic{
		{ShortName: "A", TotalTraffic: 1},
		{ShortName: "A", TotalTraffic: 9},
	}
	if got := TrafficByStation(recs)["A"].TotalTraffic; got != 1 {
		t.Errorf("got %d, want first record", got)
	}
}

func TestMaxTraffic_Empty(t *testing.T) {
	if MaxTraffic(nil) != 0 {
		t.Error("empty slice should give 0")
	}
}
