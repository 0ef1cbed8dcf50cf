// Package streamer serves byte ranges of local media files over HTTP
// with a fixed-size copy buffer, so memory stays flat no matter how
// large the file is.
package streamer

import (
	"encoding/json"
	"net/http"
)

// DefaultChunkBytes is the copy buffer size used when none is configured.
const DefaultChunkBytes = 64 << 10

type FileStreamer struct {
	chunk int
}

func New(chunkBytes int) *FileStreamer {
	if chunkBytes <= 0 {
		chunkBytes = DefaultChunkBytes
	}
	return &FileStreamer{chunk: chunkBytes}
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
