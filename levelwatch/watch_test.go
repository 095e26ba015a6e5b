package levelwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFilters(t *testing.T) {
	assert.True(t, IsLevelFile("levels/lagoon.TMX"))
	assert.True(t, IsLevelFile("tiles.tsx"))
	assert.False(t, IsLevelFile("notes.txt"))
	assert.True(t, IsTuningFile("tuning.yml"))
	assert.False(t, IsTuningFile("lagoon.tmx"))
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "lagoon.tmx")
	require.NoError(t, os.WriteFile(level, []byte("<map/>"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level write")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := w.Poll()
	assert.False(t, ok)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
