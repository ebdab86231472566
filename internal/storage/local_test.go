package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/d9705996/kysai/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time { return time.Unix(1700000000, 0) }

func TestLocal_Filename(t *testing.T) {
	l := storage.NewLocal(t.TempDir()).WithClock(fixedClock)

	tests := []struct {
		original string
		want     string
	}{
		{"site.jpg", "hse_1700000000.jpg"},
		{"site.photo.PNG", "hse_1700000000.PNG"},
		{"noext", "hse_1700000000.noext"},
		{"trailing.", "hse_1700000000."},
	}
	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Filename(tt.original))
		})
	}
}

func TestLocal_SaveCreatesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "uploads")
	l := storage.NewLocal(dir).WithClock(fixedClock)
	require.NoError(t, l.EnsureDir())

	name := l.Filename("a.jpg")
	n, err := l.Save(name, bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	_, err = l.Save(l.Filename("b.jpg"), bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestLocal_SaveMissingDir(t *testing.T) {
	l := storage.NewLocal(filepath.Join(t.TempDir(), "missing"))
	_, err := l.Save("x.jpg", bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "/static/uploads/hse_1.jpg", storage.URL("hse_1.jpg"))
}
