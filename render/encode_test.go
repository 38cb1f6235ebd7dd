package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

func TestEncode_ContentTypes(t *testing.T) {
	s := fixtureSnapshot(t, traffic.AnyTime)
	tests := []struct {
		format string
		ctype  string
	}{
		{"", "application/json"},
		{FormatJSON, "application/json"},
		{FormatGeoJSON, "application/geo+json"},
		{FormatProto, "application/x-protobuf"},
	}
	for _, tt := range tests {
		b, ctype, err := Encode(s, tt.format)
		if err != nil {
			t.Fatalf("Encode(%q): %v", tt.format, err)
		}
		if ctype != tt.ctype || len(b) == 0 {
			t.Errorf("Encode(%q) = %d bytes, %s", tt.format, len(b), ctype)
		}
	}
	if _, _, err := Encode(s, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestBuildGeoJSON(t *testing.T) {
	s := fixtureSnapshot(t, traffic.AnyTime)
	b, err := BuildGeoJSON(s)
	if err != nil {
		t.Fatalf("BuildGeoJSON: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatalf("output is not a FeatureCollection: %v", err)
	}
	if len(fc.Features) != len(s.Markers) {
		t.Fatalf("features=%d markers=%d", len(fc.Features), len(s.Markers))
	}

	f := fc.Features[0]
	pt, ok := f.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("geometry is %T", f.Geometry)
	}
	if pt.Lon() != -71.0937 || pt.Lat() != 42.3581 {
		t.Errorf("point = %v", pt)
	}
	if f.ID != "A32000" || f.Properties["total_traffic"] != 6.0 {
		t.Errorf("feature = %v %v", f.ID, f.Properties)
	}
	if fc.ExtraMembers["any_time"] != true {
		t.Errorf("extra members = %v", fc.ExtraMembers)
	}
	t.Logf("✓ GeoJSON with %d features", len(fc.Features))
}

func TestBuildProto(t *testing.T) {
	s := fixtureSnapshot(t, 600)
	b, err := BuildProto(s)
	if err != nil {
		t.Fatalf("BuildProto: %v", err)
	}
	var st structpb.Struct
	if err := proto.Unmarshal(b, &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	fields := st.GetFields()
	if fields["time_label"].GetStringValue() != "10:00 AM" {
		t.Errorf("time_label = %v", fields["time_label"])
	}
	if fields["max_traffic"].GetNumberValue() != 3 {
		t.Errorf("max_traffic = %v", fields["max_traffic"])
	}
	markers := fields["markers"].GetListValue().GetValues()
	if len(markers) != len(s.Markers) {
		t.Fatalf("markers = %d", len(markers))
	}
	first := markers[0].GetStructValue().GetFields()
	if first["short_name"].GetStringValue() != "A32000" {
		t.Errorf("first marker = %v", first)
	}
}
