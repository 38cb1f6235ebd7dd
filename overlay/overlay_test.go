package overlay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal/testutil"
)

func TestStore_Get(t *testing.T) {
	body := testutil.ReadFixture(t, "bike_lanes.geojson")
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/lanes.geojson":
			_, _ = w.Write(body)
		case "/broken.geojson":
			_, _ = w.Write([]byte(`{"type": "Point"`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := NewStore(internal.NewFetcher(5*time.Second), []config.Overlay{
		{Name: "bike-lanes", Source: "boston_route", URL: srv.URL + "/lanes.geojson"},
		{Name: "broken", Source: "broken_route", URL: srv.URL + "/broken.geojson"},
		{Name: "missing", Source: "missing_route", URL: srv.URL + "/missing.geojson"},
	}, time.Minute)

	ctx := context.Background()
	b, err := store.Get(ctx, "bike-lanes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatalf("invalid GeoJSON: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Errorf("expected only the 2 line features, got %d", len(fc.Features))
	}

	if _, err := store.Get(ctx, "bike-lanes"); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("second Get should be cached, upstream hit %d times", atomic.LoadInt32(&hits))
	}

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, ErrUnknownOverlay) {
		t.Errorf("expected ErrUnknownOverlay, got %v", err)
	}
	if _, err := store.Get(ctx, "broken"); err == nil {
		t.Error("expected error for malformed GeoJSON")
	}
	if _, err := store.Get(ctx, "missing"); err == nil || errors.Is(err, ErrUnknownOverlay) {
		t.Errorf("expected upstream error, got %v", err)
	}
	t.Logf("✓ Overlay reduced to %d line features", len(fc.Features))
}

func TestLines(t *testing.T) {
	fc, err := geojson.UnmarshalFeatureCollection(testutil.ReadFixture(t, "bike_lanes.geojson"))
	if err != nil {
		t.Fatal(err)
	}
	lines := Lines(fc)
	if len(lines.Features) != 2 {
		t.Fatalf("got %d features", len(lines.Features))
	}
	if lines.Features[0].Properties.MustString("STREET_NAM") != "MASSACHUSETTS AVE" {
		t.Errorf("properties not kept: %v", lines.Features[0].Properties)
	}
	if len(fc.Features) != 3 {
		t.Error("input collection was modified")
	}
}
