package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Server struct {
	Addr string `json:"addr"`
}

type Paths struct {
	MediaDir string `json:"media_dir"`
	ThumbDir string `json:"thumb_dir"`
	DBPath   string `json:"db_path"`
}

type Library struct {
	// Extensions admitted by the startup scan, lowercase with leading dot.
	Extensions []string `json:"extensions"`
}

type Stream struct {
	// Copy buffer size for range streaming. 0 means the built-in default.
	ChunkBytes int `json:"chunk_bytes"`
}

type Log struct {
	Level string `json:"level"` // debug|info|warn|error
}

type Config struct {
	Server  Server  `json:"server"`
	Paths   Paths   `json:"paths"`
	Library Library `json:"library"`
	Stream  Stream  `json:"stream"`
	Log     Log     `json:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8000"},
		Paths: Paths{
			MediaDir: "/data/videos",
			ThumbDir: "/data/thumbnails",
			DBPath:   "/data/vidserve.db",
		},
		Library: Library{
			Extensions: []string{".mp4", ".m4v", ".mkv", ".webm"},
		},
		Stream: Stream{ChunkBytes: 64 << 10},
		Log:    Log{Level: "info"},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config file")
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Wrap(err, "decode config file")
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets container deployments override the file without editing it.
func (c *Config) applyEnv() {
	if v := os.Getenv("VIDSERVE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("VIDSERVE_MEDIA_DIR"); v != "" {
		c.Paths.MediaDir = v
	}
	if v := os.Getenv("VIDSERVE_THUMB_DIR"); v != "" {
		c.Paths.ThumbDir = v
	}
	if v := os.Getenv("VIDSERVE_DB_PATH"); v != "" {
		c.Paths.DBPath = v
	}
	if v := os.Getenv("VIDSERVE_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr required")
	}
	if c.Paths.MediaDir == "" {
		return errors.New("paths.media_dir required")
	}
	if c.Stream.ChunkBytes < 0 {
		return errors.New("stream.chunk_bytes must be >= 0")
	}
	for _, ext := range c.Library.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("library.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}
