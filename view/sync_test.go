package view

import (
	"sync"
	"testing"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
)

var testStations = []gbfs.Station{
	{ShortName: "A", Lon: 1, Lat: 2},
	{ShortName: "B", Lon: 3, Lat: 4},
}

// offsetProjector shifts by the viewport center so each view gives distinct positions.
func offsetProjector(v Viewport) Projector {
	return ProjectorFunc(func(lon, lat float64) Point {
		return Point{X: lon - v.Center.Lon(), Y: lat - v.Center.Lat()}
	})
}

func TestParseEvent(t *testing.T) {
	tests := map[string]Event{
		"move":    EventMove,
		"zoom":    EventZoom,
		"resize":  EventResize,
		"moveend": EventMoveEnd,
		"":        EventMoveEnd,
	}
	for in, want := range tests {
		if got := ParseEvent(in); got != want {
			t.Errorf("ParseEvent(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSync_EveryEventRecomputesPositions(t *testing.T) {
	var s Sync
	u := NewUpdaterWithProjection(testStations, offsetProjector)
	s.Subscribe(u.Update)

	events := []Event{EventMove, EventZoom, EventResize, EventMoveEnd}
	for i, ev := range events {
		s.Notify(ev, Viewport{Center: orb.Point{float64(i), 0}})
		pos := u.Positions()
		if len(pos) != len(testStations) {
			t.Fatalf("event %v: %d positions", ev, len(pos))
		}
		if pos[0].ShortName != "A" || pos[0].X != 1-float64(i) {
			t.Errorf("event %v: position %+v not recomputed", ev, pos[0])
		}
	}
	if u.Updates() != len(events) {
		t.Errorf("updates = %d, want %d", u.Updates(), len(events))
	}
}

func TestSync_SingleSubscriber(t *testing.T) {
	var s Sync
	first, second := 0, 0
	s.Subscribe(func(Viewport) { first++ })
	s.Subscribe(func(Viewport) { second++ })
	s.ViewChanged(Viewport{})
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d; only the latest subscriber is called", first, second)
	}
}

func TestSync_NoSubscriber(t *testing.T) {
	var s Sync
	s.Notify(EventMove, Viewport{}) // must not panic
}

func TestUpdater_Concurrent(t *testing.T) {
	var s Sync
	u := NewUpdater(testStations)
	s.Subscribe(u.Update)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Notify(EventMove, Viewport{Center: orb.Point{float64(i) / 10, 0}, Zoom: 3, Width: 100, Height: 100})
			_ = u.Positions()
		}(i)
	}
	wg.Wait()
	if u.Updates() != 20 {
		t.Errorf("updates = %d", u.Updates())
	}
}
