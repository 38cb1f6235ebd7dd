package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/overlay"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/render"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/view"
)

func (s *Server) handleMapView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, render.BuildMapView(s.cfg, overlayPrefix))
}

func (s *Server) handleTraffic(w http.ResponseWriter, r *http.Request) {
	q, err := parseTrafficQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	buf, contentType, err := s.cache.GetTrafficResponse(q.Time, q.Format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeBytes(w, contentType, buf)
}

func (s *Server) handleStationTraffic(w http.ResponseWriter, r *http.Request) {
	shortName := mux.Vars(r)["short_name"]
	q, err := parseTrafficQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, ok := s.cache.Snapshot(q.Time).Find(shortName)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("station %q not found", shortName))
		return
	}
	writeJSON(w, m)
}

type positionsResponse struct {
	Zoom      float64         `json:"zoom"`
	Center    [2]float64      `json:"center"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Positions []view.Position `json:"positions"`
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	q, err := parsePositionsQuery(r.URL.Query(), s.cfg.Map)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	vp := view.Viewport{Center: orb.Point{q.Lon, q.Lat}, Zoom: q.Zoom, Width: q.Width, Height: q.Height}

	s.viewMu.Lock()
	s.viewSync.Notify(view.ParseEvent(q.Event), vp)
	positions := s.updater.Positions()
	s.viewMu.Unlock()

	writeJSON(w, positionsResponse{
		Zoom:      vp.Zoom,
		Center:    [2]float64{q.Lon, q.Lat},
		Width:     vp.Width,
		Height:    vp.Height,
		Positions: positions,
	})
}

func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	buf, err := s.overlays.Get(r.Context(), name)
	if errors.Is(err, overlay.ErrUnknownOverlay) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("overlay %s: %v", name, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeBytes(w, "application/geo+json", buf)
}
