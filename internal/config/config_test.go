package config

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_LoadDefaultsAndFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("expected default addr :8000, got %q", cfg.Server.Addr)
	}
	if cfg.Stream.ChunkBytes != 64<<10 {
		t.Errorf("expected default chunk 64KiB, got %d", cfg.Stream.ChunkBytes)
	}

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server":{"addr":":9999"},"paths":{"media_dir":"/tmp/m"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected file addr, got %q", cfg.Server.Addr)
	}
	if cfg.Paths.MediaDir != "/tmp/m" {
		t.Errorf("expected file media dir, got %q", cfg.Paths.MediaDir)
	}
	// untouched sections keep defaults
	if len(cfg.Library.Extensions) == 0 {
		t.Error("expected default extensions to survive partial config")
	}
}

func Test_EnvOverrides(t *testing.T) {
	t.Setenv("VIDSERVE_ADDR", ":7777")
	t.Setenv("VIDSERVE_MEDIA_DIR", "/env/media")
	t.Setenv("VIDSERVE_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.Paths.MediaDir != "/env/media" {
		t.Errorf("expected env media dir, got %q", cfg.Paths.MediaDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected lowercased level, got %q", cfg.Log.Level)
	}
}

func Test_Validate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	bad := Default()
	bad.Server.Addr = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty addr")
	}

	bad = Default()
	bad.Library.Extensions = []string{"mp4"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for extension without dot")
	}
}

func Test_SaveAndEnsure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	if err := EnsureConfigFile(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != Default().Server.Addr {
		t.Errorf("expected default config written, got addr %q", cfg.Server.Addr)
	}

	// never overwrites
	cfg.Server.Addr = ":1234"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigFile(path); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":1234" {
		t.Errorf("expected saved config untouched, got %q", cfg.Server.Addr)
	}
}
