package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vidserve/vidserve/internal/catalog"
)

// handleVideo streams the backing file for one catalog id. Range
// handling, status and headers all live in the streamer; this handler
// only resolves id -> path.
func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	v, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.stream.ServeFile(w, r, v.VideoPath, v.ContentType)
}

func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	v, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if !v.HasThumb() {
		writeErr(w, http.StatusNotFound, "thumbnail not found")
		return
	}
	s.stream.ServeFile(w, r, v.ThumbPath, thumbContentType(v.ThumbPath))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*catalog.Video, bool) {
	id := r.PathValue("id")
	v, err := s.videos.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "video not found")
			return nil, false
		}
		log.Errorf("api: catalog lookup failed id=%s err=%v", id, err)
		writeErr(w, http.StatusInternalServerError, "catalog unavailable")
		return nil, false
	}
	return v, true
}

func thumbContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
