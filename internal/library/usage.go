package library

import (
	"io/fs"
	"path/filepath"
)

// DirUsage sums regular-file sizes under dir. Best-effort; unreadable
// entries are skipped.
func DirUsage(dir string) (files int, bytes int64) {
	if dir == "" {
		return 0, 0
	}
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		st, err := d.Info()
		if err != nil {
			return nil
		}
		files++
		bytes += st.Size()
		return nil
	})
	return files, bytes
}
