package traffic

import (
	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/trips"
)

// StationTraffic is the traffic observed at one station.
// TotalTraffic is always Arrivals + Departures.
type StationTraffic struct {
	ShortName    string  `json:"short_name"`
	Name         string  `json:"name,omitempty"`
	Lon          float64 `json:"lon"`
	Lat          float64 `json:"lat"`
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	TotalTraffic int     `json:"total_traffic"`
}

// CountByStation groups trips by start station and by end station.
func CountByStation(ts []trips.Trip) (departures, arrivals map[string]int) {
	departures = make(map[string]int)
	arrivals = make(map[string]int)
	for _, t := range ts {
		departures[t.StartStationID]++
		arrivals[t.EndStationID]++
	}
	return departures, arrivals
}

// ComputeStationTraffic returns one record per station, in station order.
// Trips referencing unknown stations are not counted anywhere.
func ComputeStationTraffic(stations []gbfs.Station, ts []trips.Trip) []StationTraffic {
	departures, arrivals := CountByStation(ts)
	out := make([]StationTraffic, len(stations))
	for i, st := range stations {
		out[i] = newStationTraffic(st, arrivals[st.ShortName], departures[st.ShortName])
	}
	return out
}

func newStationTraffic(st gbfs.Station, arrivals, departures int) StationTraffic {
	return StationTraffic{
		ShortName:    st.ShortName,
		Name:         st.Name,
		Lon:          st.Lon,
		Lat:          st.Lat,
		Arrivals:     arrivals,
		Departures:   departures,
		TotalTraffic: arrivals + departures,
	}
}

// TrafficByStation keys records by short name. Later duplicates are ignored.
func TrafficByStation(traffic []StationTraffic) map[string]StationTraffic {
	out := make(map[string]StationTraffic, len(traffic))
	for _, t := range traffic {
		if _, ok := out[t.ShortName]; !ok {
			out[t.ShortName] = t
		}
	}
	return out
}

// MaxTraffic returns the largest TotalTraffic, or 0 for an empty slice.
func MaxTraffic(traffic []StationTraffic) int {
	m := 0
	for _, t := range traffic {
		if t.TotalTraffic > m {
			m = t.TotalTraffic
		}
	}
	return m
}
