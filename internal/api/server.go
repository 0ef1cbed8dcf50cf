package api

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"

	"github.com/vidserve/vidserve/internal/catalog"
	"github.com/vidserve/vidserve/internal/config"
	"github.com/vidserve/vidserve/internal/streamer"
	"github.com/vidserve/vidserve/internal/version"
)

//go:embed webui/*
var uiFS embed.FS

type Server struct {
	cfg    config.Config
	mux    *http.ServeMux
	videos *catalog.Store
	stream *streamer.FileStreamer
	stats  singleflight.Group
}

func New(cfg config.Config, videos *catalog.Store) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		mux:    http.NewServeMux(),
		videos: videos,
		stream: streamer.New(cfg.Stream.ChunkBytes),
	}

	// Health
	s.mux.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"time":    time.Now().Format(time.RFC3339),
			"version": version.Version,
			"commit":  version.Commit,
		})
	})

	s.mux.HandleFunc("GET /api/videos", s.handleListVideos)
	s.mux.HandleFunc("GET /api/videos/{id}", s.handleVideo)
	s.mux.HandleFunc("GET /api/thumbnails/{id}", s.handleThumbnail)
	s.mux.HandleFunc("GET /api/stats", s.handleStats)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	// UI static
	ui, err := fs.Sub(uiFS, "webui")
	if err != nil {
		return nil, err
	}
	s.mux.Handle("/", http.FileServer(http.FS(ui)))

	return s, nil
}

// Handler wraps the mux with the middleware stack. Recovery sits
// outermost so a panic anywhere below still answers 500.
func (s *Server) Handler() http.Handler {
	return recoveryMiddleware(accessLogMiddleware(metricsMiddleware(corsMiddleware(s.mux))))
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
