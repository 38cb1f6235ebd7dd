package view

import (
	"sync"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/gbfs"
)

// Event is a map view change reported by the map engine.
type Event int

const (
	EventMove Event = iota
	EventZoom
	EventResize
	EventMoveEnd
)

// ParseEvent reads an event name; unknown names are EventMoveEnd.
func ParseEvent(s string) Event {
	switch s {
	case "move":
		return EventMove
	case "zoom":
		return EventZoom
	case "resize":
		return EventResize
	}
	return EventMoveEnd
}

// Sync delivers view changes to a single subscriber.
type Sync struct {
	mu         sync.Mutex
	subscriber func(Viewport)
}

// Subscribe sets the subscriber, replacing any previous one.
func (s *Sync) Subscribe(fn func(Viewport)) {
	s.mu.Lock()
	s.subscriber = fn
	s.mu.Unlock()
}

// Notify reports a map event. Every event kind is the same view change.
func (s *Sync) Notify(_ Event, v Viewport) {
	s.ViewChanged(v)
}

// ViewChanged calls the subscriber with v, if there is one.
func (s *Sync) ViewChanged(v Viewport) {
	s.mu.Lock()
	fn := s.subscriber
	s.mu.Unlock()
	if fn != nil {
		fn(v)
	}
}

// Position is a station's marker position on screen.
type Position struct {
	ShortName string `json:"short_name"`
	Point
}

// Positions projects every station, in station order.
func Positions(stations []gbfs.Station, p Projector) []Position {
	out := make([]Position, len(stations))
	for i, st := range stations {
		out[i] = Position{ShortName: st.ShortName, Point: p.Project(st.Lon, st.Lat)}
	}
	return out
}

// Updater recomputes station positions on every view change.
type Updater struct {
	stations  []gbfs.Station
	projector func(Viewport) Projector

	mu        sync.Mutex
	positions []Position
	updates   int
}

// NewUpdater returns an updater using web mercator projection.
func NewUpdater(stations []gbfs.Station) *Updater {
	return NewUpdaterWithProjection(stations, func(v Viewport) Projector { return NewWebMercator(v) })
}

// NewUpdaterWithProjection returns an updater using projector for each view.
func NewUpdaterWithProjection(stations []gbfs.Station, projector func(Viewport) Projector) *Updater {
	return &Updater{stations: stations, projector: projector}
}

// Update is the Sync subscriber.
func (u *Updater) Update(v Viewport) {
	pos := Positions(u.stations, u.projector(v))
	u.mu.Lock()
	u.positions = pos
	u.updates++
	u.mu.Unlock()
}

// Positions returns the positions from the latest update.
func (u *Updater) Positions() []Position {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.positions
}

// Updates counts how many view changes have been applied.
func (u *Updater) Updates() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.updates
}
