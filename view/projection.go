package view

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// TileSize is the pixel size of one tile at zoom 0, as used by vector map engines.
const TileSize = 512

// Point is a screen position in pixels from the top-left corner.
type Point struct {
	X float64 `json:"cx"`
	Y float64 `json:"cy"`
}

// Viewport describes what the map currently shows.
type Viewport struct {
	Center orb.Point // lon, lat
	Zoom   float64
	Width  float64
	Height float64
}

// Projector maps a geographic position to the screen.
type Projector interface {
	Project(lon, lat float64) Point
}

// ProjectorFunc adapts a function to Projector.
type ProjectorFunc func(lon, lat float64) Point

// Project calls f.
func (f ProjectorFunc) Project(lon, lat float64) Point { return f(lon, lat) }

// WebMercator projects with spherical mercator onto 512px tiles.
type WebMercator struct {
	worldSize float64
	origin    Point
}

// NewWebMercator builds the projection for v.
func NewWebMercator(v Viewport) *WebMercator {
	wm := &WebMercator{worldSize: TileSize * math.Exp2(v.Zoom)}
	c := wm.world(v.Center[0], v.Center[1])
	wm.origin = Point{X: c.X - v.Width/2, Y: c.Y - v.Height/2}
	return wm
}

// world returns the position in world pixels at the projection's zoom.
func (wm *WebMercator) world(lon, lat float64) Point {
	m := project.WGS84.ToMercator(orb.Point{lon, lat})
	circumference := 2 * math.Pi * orb.EarthRadius
	return Point{
		X: (m[0]/circumference + 0.5) * wm.worldSize,
		Y: (0.5 - m[1]/circumference) * wm.worldSize,
	}
}

// Project implements Projector.
func (wm *WebMercator) Project(lon, lat float64) Point {
	w := wm.world(lon, lat)
	return Point{X: w.X - wm.origin.X, Y: w.Y - wm.origin.Y}
}
