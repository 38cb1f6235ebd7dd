package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToFeatureCollection exposes the markers as GeoJSON points so they can be
// loaded straight into a map source. Snapshot metadata goes into foreign
// members of the collection.
func ToFeatureCollection(s *Snapshot) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range s.Markers {
		f := geojson.NewFeature(orb.Point{m.Lon, m.Lat})
		f.ID = m.ShortName
		f.Properties = geojson.Properties{
			"short_name":      m.ShortName,
			"name":            m.Name,
			"arrivals":        m.Arrivals,
			"departures":      m.Departures,
			"total_traffic":   m.TotalTraffic,
			"radius":          m.Radius,
			"departure_ratio": m.DepartureRatio,
			"title":           m.Title,
		}
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{
		"time_filter":  s.TimeFilter,
		"time_label":   s.TimeLabel,
		"any_time":     s.AnyTime,
		"max_traffic":  s.MaxTraffic,
		"trip_count":   s.TripCount,
		"generated_at": s.GeneratedAt,
	}
	return fc
}

// BuildGeoJSON serializes a snapshot as a GeoJSON FeatureCollection.
func BuildGeoJSON(s *Snapshot) ([]byte, error) {
	return ToFeatureCollection(s).MarshalJSON()
}
