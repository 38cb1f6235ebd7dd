package server

import (
	"net/http"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

type healthResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
	Trips    int    `json:"trips"`
	LoadedAt string `json:"loaded_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{
		Status:   "ok",
		Stations: s.data.Stations.Len(),
		Trips:    len(s.data.Trips),
		LoadedAt: internal.Iso8601(s.data.LoadedAt),
	})
}
