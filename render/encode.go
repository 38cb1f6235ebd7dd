package render

import "fmt"

// Output formats accepted by Encode.
const (
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
	FormatProto   = "pb"
)

// Encode serializes s in format and returns the matching content type.
func Encode(s *Snapshot, format string) ([]byte, string, error) {
	switch format {
	case "", FormatJSON:
		b, err := BuildJSON(s)
		return b, "application/json", err
	case FormatGeoJSON:
		b, err := BuildGeoJSON(s)
		return b, "application/geo+json", err
	case FormatProto:
		b, err := BuildProto(s)
		return b, "application/x-protobuf", err
	}
	return nil, "", fmt.Errorf("unknown format %q", format)
}
