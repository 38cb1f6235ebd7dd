// Package view projects stations to screen coordinates for a map viewport.
//
// Map engines report several kinds of view change (move, zoom, resize,
// end of move). They all mean the same thing for the markers, so Sync turns
// every one of them into a single ViewChanged notification delivered to one
// subscriber, normally an Updater that recomputes every station position
// from scratch.
package view
