package gbfs

// Station is a fixed-location dock. ShortName is the identifier trips refer to.
type Station struct {
	ShortName string  `json:"short_name"`
	StationID string  `json:"station_id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
	Capacity  int     `json:"capacity,omitempty"`
}

// stationRecord is the raw feed entry; the GBFS producers disagree on
// whether ids and coordinates are strings or numbers.
type stationRecord struct {
	StationID any    `json:"station_id"`
	ShortName any    `json:"short_name"`
	Name      string `json:"name"`
	Lon       any    `json:"lon"`
	Lat       any    `json:"lat"`
	Capacity  any    `json:"capacity"`
}

type stationFeed struct {
	LastUpdated any `json:"last_updated"`
	Data        *struct {
		Stations []stationRecord `json:"stations"`
	} `json:"data"`
}
