// Package overlay serves the static bike lane layers drawn under the
// station markers. Upstream GeoJSON is fetched on demand, reduced to its
// line geometries and cached.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

// ErrUnknownOverlay is returned for names missing from the configuration.
var ErrUnknownOverlay = errors.New("unknown overlay")

// Store fetches and caches overlay GeoJSON by overlay name.
type Store struct {
	fetcher  *internal.Fetcher
	overlays map[string]config.Overlay
	cache    *cache.Cache
}

// NewStore creates a store. ttl bounds how long a fetched layer is reused.
func NewStore(f *internal.Fetcher, overlays []config.Overlay, ttl time.Duration) *Store {
	byName := make(map[string]config.Overlay, len(overlays))
	for _, o := range overlays {
		byName[o.Name] = o
	}
	return &Store{fetcher: f, overlays: byName, cache: cache.New(ttl, 2*ttl)}
}

// Get returns the line features of the named overlay as GeoJSON.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	o, ok := s.overlays[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOverlay, name)
	}
	if v, found := s.cache.Get(name); found {
		return v.([]byte), nil
	}
	raw, err := s.fetcher.Fetch(ctx, o.URL)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("overlay %s: %w", name, err)
	}
	lines := Lines(fc)
	log.Printf("overlay %s: %d of %d features are lines", name, len(lines.Features), len(fc.Features))
	buf, err := lines.MarshalJSON()
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(name, buf)
	return buf, nil
}

// Lines keeps the LineString and MultiLineString features of fc.
func Lines(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.LineString, orb.MultiLineString:
			out.Append(f)
		}
	}
	return out
}
