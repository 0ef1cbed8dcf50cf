package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vidserve/vidserve/internal/db"
)

// ErrNotFound reports an id with no catalog row.
var ErrNotFound = errors.New("video not found")

type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store { return &Store{db: d} }

func (s *Store) FindByID(ctx context.Context, id string) (*Video, error) {
	row := s.db.SQL.QueryRowContext(ctx,
		`SELECT id,title,video_path,thumb_path,content_type,size_bytes,added_at FROM videos WHERE id=?`, id)
	var (
		v     Video
		added int64
	)
	err := row.Scan(&v.ID, &v.Title, &v.VideoPath, &v.ThumbPath, &v.ContentType, &v.SizeBytes, &added)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.AddedAt = time.Unix(added, 0)
	return &v, nil
}

func (s *Store) List(ctx context.Context) ([]Video, error) {
	rows, err := s.db.SQL.QueryContext(ctx,
		`SELECT id,title,video_path,thumb_path,content_type,size_bytes,added_at FROM videos ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Video, 0)
	for rows.Next() {
		var (
			v     Video
			added int64
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.VideoPath, &v.ThumbPath, &v.ContentType, &v.SizeBytes, &added); err != nil {
			return nil, err
		}
		v.AddedAt = time.Unix(added, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n)
	return n, err
}

// ReplaceAll swaps the whole catalog for the result of a fresh scan in
// one transaction, so readers never observe a half-written library.
func (s *Store) ReplaceAll(ctx context.Context, videos []Video) error {
	tx, err := s.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM videos`); err != nil {
		return err
	}
	for _, v := range videos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO videos(id,title,video_path,thumb_path,content_type,size_bytes,added_at) VALUES(?,?,?,?,?,?,?)`,
			v.ID, v.Title, v.VideoPath, v.ThumbPath, v.ContentType, v.SizeBytes, v.AddedAt.Unix())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) RecordScan(ctx context.Context, run ScanRun) error {
	var errStr *string
	if run.Error != "" {
		errStr = &run.Error
	}
	_, err := s.db.SQL.ExecContext(ctx,
		`INSERT INTO scan_runs(id,started_at,finished_at,videos_found,thumbs_found,skipped,error) VALUES(?,?,?,?,?,?,?)`,
		run.ID, run.StartedAt.Unix(), run.FinishedAt.Unix(), run.VideosFound, run.ThumbsFound, run.Skipped, errStr)
	return err
}

func (s *Store) LastScan(ctx context.Context) (*ScanRun, error) {
	row := s.db.SQL.QueryRowContext(ctx,
		`SELECT id,started_at,finished_at,videos_found,thumbs_found,skipped,error FROM scan_runs ORDER BY started_at DESC LIMIT 1`)
	var (
		run               ScanRun
		started, finished int64
		errStr            *string
	)
	err := row.Scan(&run.ID, &started, &finished, &run.VideosFound, &run.ThumbsFound, &run.Skipped, &errStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	run.StartedAt = time.Unix(started, 0)
	run.FinishedAt = time.Unix(finished, 0)
	if errStr != nil {
		run.Error = *errStr
	}
	return &run, nil
}
