// Package server exposes station traffic over HTTP for the browser map.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/overlay"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/render"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/session"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/view"
)

const overlayPrefix = "/api/overlays/"

// Server serves one loaded dataset.
type Server struct {
	cfg      config.AppConfig
	data     *session.Dataset
	cache    *TrafficCache
	overlays *overlay.Store
	http     *http.Server

	// viewMu serializes a view change with reading its positions.
	viewMu   sync.Mutex
	viewSync view.Sync
	updater  *view.Updater
}

// New wires the handlers for data. overlays may be nil when no overlay
// layers are configured.
func New(cfg config.AppConfig, data *session.Dataset, overlays *overlay.Store) *Server {
	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	if overlays == nil {
		overlays = overlay.NewStore(nil, nil, ttl)
	}
	s := &Server{
		cfg:      cfg,
		data:     data,
		cache:    NewTrafficCache(data, render.StyleFromConfig(cfg.Render), ttl),
		overlays: overlays,
		updater:  view.NewUpdater(data.Stations.All()),
	}
	s.viewSync.Subscribe(s.updater.Update)
	return s
}

// Handler returns the routed handler with middleware and CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware, loggingMiddleware)

	api := r.PathPrefix("/api").Methods(http.MethodGet).Subrouter()
	api.HandleFunc("/health", s.handleHealth)
	api.HandleFunc("/map", s.handleMapView)
	api.HandleFunc("/traffic", s.handleTraffic)
	api.HandleFunc("/traffic/{short_name}", s.handleStationTraffic)
	api.HandleFunc("/positions", s.handlePositions)
	api.HandleFunc("/overlays/{name}", s.handleOverlay)
	r.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(r)
}

// Start listens in the background on the configured port.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// Shutdown stops the HTTP server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
