package streamer

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vidserve/vidserve/internal/httprange"
)

// ServeFile answers one GET or HEAD request for the file at path,
// honoring a single Range header. Status and headers are only written
// after the file is open, so a file that vanished since the catalog
// scan still gets a clean 404.
func (s *FileStreamer) ServeFile(w http.ResponseWriter, r *http.Request, path, contentType string) {
	meta, err := ResolveMeta(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeErr(w, http.StatusNotFound, "file not found")
			return
		}
		// Pre-header errors all collapse to 404 for the client; the
		// log keeps the I/O case distinguishable.
		log.Errorf("stream: stat failed path=%s err=%v", path, err)
		writeErr(w, http.StatusNotFound, "file not found")
		return
	}

	spec, perr := httprange.Parse(r.Header.Get("Range"))
	var plan httprange.Plan
	if perr == nil {
		plan, perr = httprange.Resolve(spec, meta.Size)
	}
	if perr != nil {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", meta.Size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		writeErr(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()

	h := w.Header()
	h.Set("Accept-Ranges", "bytes")
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.FormatInt(plan.Length(), 10))
	h.Set("Last-Modified", meta.ModTime.UTC().Format(http.TimeFormat))
	if plan.Partial() {
		h.Set("Content-Range", plan.ContentRange())
		h.Set("Connection", "keep-alive")
	}
	w.WriteHeader(plan.Status)

	if r.Method == http.MethodHead || plan.Length() == 0 {
		return
	}

	if err := s.copyRange(w, f, plan.Start, plan.Length()); err != nil {
		// Headers are gone; all we can do is stop and note why.
		if clientGone(r, err) {
			log.Debugf("stream: client closed connection path=%s", filepath.Base(path))
		} else {
			log.Errorf("stream: copy failed path=%s err=%v", filepath.Base(path), err)
		}
	}
}

// copyRange writes exactly length bytes starting at start, one chunk at
// a time.
func (s *FileStreamer) copyRange(w io.Writer, f *os.File, start, length int64) error {
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, s.chunk)
	_, err := io.CopyBuffer(w, io.LimitReader(f, length), buf)
	return err
}

func clientGone(r *http.Request, err error) bool {
	if r.Context().Err() != nil {
		return true
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
