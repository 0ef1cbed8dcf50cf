package api

import (
	"context"
	"net/http"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/vidserve/vidserve/internal/catalog"
	"github.com/vidserve/vidserve/internal/library"
	"github.com/vidserve/vidserve/internal/version"
)

type diskStats struct {
	TotalBytes int64  `json:"total_bytes"`
	FreeBytes  int64  `json:"free_bytes"`
	TotalHuman string `json:"total_human"`
	FreeHuman  string `json:"free_human"`
}

type libraryStats struct {
	Videos     int    `json:"videos"`
	MediaFiles int    `json:"media_files"`
	MediaBytes int64  `json:"media_bytes"`
	MediaHuman string `json:"media_human"`
	ThumbFiles int    `json:"thumb_files"`
	ThumbBytes int64  `json:"thumb_bytes"`
}

type statsResponse struct {
	Version  string           `json:"version"`
	Library  libraryStats     `json:"library"`
	Disk     *diskStats       `json:"disk,omitempty"`
	LastScan *catalog.ScanRun `json:"last_scan,omitempty"`
}

// handleStats walks the media tree, which is not free; singleflight
// collapses concurrent requests into a single walk.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	v, err, _ := s.stats.Do("stats", func() (any, error) {
		return s.buildStats(r.Context())
	})
	if err != nil {
		log.Errorf("api: stats failed err=%v", err)
		writeErr(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	writeJSON(w, v)
}

func (s *Server) buildStats(ctx context.Context) (*statsResponse, error) {
	count, err := s.videos.Count(ctx)
	if err != nil {
		return nil, err
	}
	last, err := s.videos.LastScan(ctx)
	if err != nil {
		return nil, err
	}

	mediaFiles, mediaBytes := library.DirUsage(s.cfg.Paths.MediaDir)
	thumbFiles, thumbBytes := library.DirUsage(s.cfg.Paths.ThumbDir)

	resp := &statsResponse{
		Version: version.Version,
		Library: libraryStats{
			Videos:     count,
			MediaFiles: mediaFiles,
			MediaBytes: mediaBytes,
			MediaHuman: humanize.Bytes(uint64(mediaBytes)),
			ThumbFiles: thumbFiles,
			ThumbBytes: thumbBytes,
		},
		LastScan: last,
	}
	if d, derr := diskFor(s.cfg.Paths.MediaDir); derr == nil {
		resp.Disk = d
	} else {
		log.Debugf("api: statfs failed dir=%s err=%v", s.cfg.Paths.MediaDir, derr)
	}
	return resp, nil
}

func diskFor(dir string) (*diskStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return nil, err
	}
	total := int64(st.Blocks) * int64(st.Bsize)
	free := int64(st.Bavail) * int64(st.Bsize)
	return &diskStats{
		TotalBytes: total,
		FreeBytes:  free,
		TotalHuman: humanize.Bytes(uint64(total)),
		FreeHuman:  humanize.Bytes(uint64(free)),
	}, nil
}
