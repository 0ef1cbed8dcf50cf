package api

import (
	"net/http"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/vidserve/vidserve/internal/catalog"
	"github.com/vidserve/vidserve/internal/library"
)

type videoItem struct {
	catalog.Video
	Initial   string `json:"initial"`
	SizeHuman string `json:"size_human"`
	HasThumb  bool   `json:"has_thumb"`
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.videos.List(r.Context())
	if err != nil {
		log.Errorf("api: list videos failed err=%v", err)
		writeErr(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	out := make([]videoItem, 0, len(videos))
	for _, v := range videos {
		out = append(out, videoItem{
			Video:     v,
			Initial:   library.Initial(v.Title),
			SizeHuman: humanize.Bytes(uint64(v.SizeBytes)),
			HasThumb:  v.HasThumb(),
		})
	}
	writeJSON(w, map[string]any{
		"count":  len(out),
		"videos": out,
	})
}
