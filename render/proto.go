package render

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts a snapshot to a protobuf Struct.
func ToStruct(s *Snapshot) (*structpb.Struct, error) {
	markers := make([]any, len(s.Markers))
	for i, m := range s.Markers {
		markers[i] = map[string]any{
			"short_name":      m.ShortName,
			"name":            m.Name,
			"lon":             m.Lon,
			"lat":             m.Lat,
			"arrivals":        m.Arrivals,
			"departures":      m.Departures,
			"total_traffic":   m.TotalTraffic,
			"radius":          m.Radius,
			"departure_ratio": m.DepartureRatio,
			"title":           m.Title,
		}
	}
	return structpb.NewStruct(map[string]any{
		"time_filter":  s.TimeFilter,
		"time_label":   s.TimeLabel,
		"any_time":     s.AnyTime,
		"max_traffic":  s.MaxTraffic,
		"trip_count":   s.TripCount,
		"generated_at": s.GeneratedAt,
		"markers":      markers,
	})
}

// BuildProto serializes a snapshot as a binary google.protobuf.Struct.
func BuildProto(s *Snapshot) ([]byte, error) {
	st, err := ToStruct(s)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(st)
}
