// Package render turns station traffic into map markers and serializes them.
//
// This package is organized into:
// - scale.go: radius and flow-colour scales
// - marker.go: marker and snapshot building, time label
// - layers.go: map view and overlay layer descriptors
// - json.go, geojson.go, proto.go: output encodings
package render
