package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	SQL *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	// modernc sqlite uses file: URI as well; keep it simple.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	s, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Allow concurrent readers while keeping WAL + busy_timeout.
	// modernc.org/sqlite is fine with multiple conns; writes will serialize.
	s.SetMaxOpenConns(4)
	s.SetMaxIdleConns(4)

	d := &DB{SQL: s}
	if err := d.migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error { return d.SQL.Close() }

func (d *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS videos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			video_path TEXT NOT NULL,
			thumb_path TEXT NOT NULL DEFAULT '',
			content_type TEXT NOT NULL,
			size_bytes INTEGER NOT NULL,
			added_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_videos_title ON videos(title);`,

		`CREATE TABLE IF NOT EXISTS scan_runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			finished_at INTEGER,
			videos_found INTEGER NOT NULL DEFAULT 0,
			thumbs_found INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			error TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scan_runs_started ON scan_runs(started_at);`,
	}
	for _, s := range stmts {
		if _, err := d.SQL.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
