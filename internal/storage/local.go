// Package storage writes uploaded images to the local static directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is the public path the upload directory is served under.
const URLPrefix = "/static/uploads/"

// Local stores uploads in a directory on disk. Names are derived from the
// upload time with one-second resolution, so two uploads in the same second
// with the same extension share a name and the later one wins.
type Local struct {
	dir string
	now func() time.Time
}

// NewLocal returns a Local rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir, now: time.Now}
}

// WithClock replaces the time source used for file names.
func (l *Local) WithClock(now func() time.Time) *Local {
	l.now = now
	return l
}

// Dir returns the upload directory.
func (l *Local) Dir() string {
	return l.dir
}

// EnsureDir creates the upload directory if it does not exist.
func (l *Local) EnsureDir() error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir %s: %w", l.dir, err)
	}
	return nil
}

// Filename derives the stored name for an upload: hse_<unix seconds>.<ext>,
// where ext is everything after the last "." of the original name, or the
// whole name when it has no dot.
func (l *Local) Filename(original string) string {
	ext := original[strings.LastIndex(original, ".")+1:]
	return fmt.Sprintf("hse_%d.%s", l.now().Unix(), ext)
}

// Save writes r to name inside the upload directory, replacing any existing
// file, and returns the number of bytes written.
func (l *Local) Save(name string, r io.Reader) (int64, error) {
	path := filepath.Join(l.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// URL returns the public path of a stored file.
func URL(name string) string {
	return URLPrefix + name
}
