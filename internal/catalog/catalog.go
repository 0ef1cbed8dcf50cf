// Package catalog is the video library: what is streamable, where the
// bytes live on disk, and the bookkeeping of library scans.
package catalog

import "time"

type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	VideoPath   string    `json:"-"`
	ThumbPath   string    `json:"-"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	AddedAt     time.Time `json:"added_at"`
}

// HasThumb reports whether the scan paired a thumbnail with this video.
func (v Video) HasThumb() bool { return v.ThumbPath != "" }

type ScanRun struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	VideosFound int       `json:"videos_found"`
	ThumbsFound int       `json:"thumbs_found"`
	Skipped     int       `json:"skipped"`
	Error       string    `json:"error,omitempty"`
}
