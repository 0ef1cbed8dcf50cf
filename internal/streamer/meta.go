package streamer

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound reports that the backing file does not exist on disk.
// Callers translate it to 404; any other error is a real I/O problem.
var ErrNotFound = errors.New("file not found")

type Meta struct {
	Size    int64
	ModTime time.Time
}

// ResolveMeta stats path without opening it. Directories count as not
// found so a catalog row pointing at one cannot be streamed.
func ResolveMeta(path string) (Meta, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Meta{}, ErrNotFound
		}
		return Meta{}, errors.Wrap(err, "stat media file")
	}
	if st.IsDir() {
		return Meta{}, ErrNotFound
	}
	return Meta{Size: st.Size(), ModTime: st.ModTime()}, nil
}
