// Package library turns a directory of media files into catalog rows:
// one startup walk that pairs videos with thumbnails and derives titles
// from filenames.
package library

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vidserve/vidserve/internal/catalog"
	"github.com/vidserve/vidserve/internal/config"
)

var thumbExts = []string{".png", ".jpg", ".jpeg", ".webp"}

type Scanner struct {
	cfg   config.Config
	store *catalog.Store
}

func NewScanner(cfg config.Config, store *catalog.Store) *Scanner {
	return &Scanner{cfg: cfg, store: store}
}

// Scan walks the media dir once and swaps the whole catalog for what it
// finds. The run is recorded even when the walk fails, so /api/stats
// can surface a broken library path.
func (s *Scanner) Scan(ctx context.Context) (catalog.ScanRun, error) {
	run := catalog.ScanRun{ID: uuid.NewString(), StartedAt: time.Now()}

	videos, thumbs, skipped, err := s.collect()
	run.VideosFound = len(videos)
	run.ThumbsFound = thumbs
	run.Skipped = skipped
	if err == nil {
		err = s.store.ReplaceAll(ctx, videos)
	}
	run.FinishedAt = time.Now()
	if err != nil {
		run.Error = err.Error()
	}
	if rerr := s.store.RecordScan(ctx, run); rerr != nil {
		log.Warnf("library: record scan failed err=%v", rerr)
	}
	if err != nil {
		return run, err
	}

	log.Infof("library: scan complete videos=%d thumbs=%d skipped=%d in=%s",
		run.VideosFound, run.ThumbsFound, run.Skipped, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	return run, nil
}

func (s *Scanner) collect() (videos []catalog.Video, thumbs, skipped int, err error) {
	root := s.cfg.Paths.MediaDir
	if st, serr := os.Stat(root); serr != nil {
		return nil, 0, 0, errors.Wrap(serr, "media dir")
	} else if !st.IsDir() {
		return nil, 0, 0, errors.Errorf("media dir %s is not a directory", root)
	}

	isVideo := func(name string) bool {
		low := strings.ToLower(name)
		for _, ext := range s.cfg.Library.Extensions {
			if strings.HasSuffix(low, ext) {
				return true
			}
		}
		return false
	}

	videos = make([]catalog.Video, 0)
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !isVideo(d.Name()) {
			skipped++
			return nil
		}
		info, err := d.Info()
		if err != nil {
			skipped++
			return nil
		}

		thumb := s.findThumb(path)
		if thumb != "" {
			thumbs++
		}
		videos = append(videos, catalog.Video{
			ID:          VideoID(root, path),
			Title:       TitleFromFilename(d.Name()),
			VideoPath:   path,
			ThumbPath:   thumb,
			ContentType: contentTypeFor(d.Name()),
			SizeBytes:   info.Size(),
			AddedAt:     info.ModTime(),
		})
		return nil
	}
	if werr := filepath.WalkDir(root, walkFn); werr != nil {
		return nil, 0, 0, werr
	}
	return videos, thumbs, skipped, nil
}

// findThumb looks for a file in the thumb dir sharing the video's stem.
func (s *Scanner) findThumb(videoPath string) string {
	dir := s.cfg.Paths.ThumbDir
	if dir == "" {
		return ""
	}
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, ext := range thumbExts {
		cand := filepath.Join(dir, stem+ext)
		if st, err := os.Stat(cand); err == nil && !st.IsDir() {
			return cand
		}
	}
	return ""
}

// VideoID derives a stable id from the path relative to the media root,
// so URLs survive restarts and rescans.
func VideoID(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	h := sha1.Sum([]byte(filepath.ToSlash(rel)))
	return hex.EncodeToString(h[:6])
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mkv":
		return "video/x-matroska"
	case ".webm":
		return "video/webm"
	default:
		return "video/mp4"
	}
}
