package trips

import "time"

// Trip is a single rental from one station to another.
type Trip struct {
	RideID         string    `json:"ride_id,omitempty"`
	RideableType   string    `json:"rideable_type,omitempty"`
	StartStationID string    `json:"start_station_id"`
	EndStationID   string    `json:"end_station_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
}
