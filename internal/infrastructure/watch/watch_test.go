package watch

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	known   map[string]bool
	dropped []string
}

func (f *fakeCache) Invalidate(file string) bool {
	f.dropped = append(f.dropped, file)
	return f.known[file]
}

func TestIsLevelFile(t *testing.T) {
	tests := map[string]bool{
		"levels/level00.json": true,
		"levels/cave.TMX":     true,
		"settings.yaml":       false,
		"levels/.level00.swp": false,
	}
	for path, want := range tests {
		assert.Equal(t, want, isLevelFile(path), path)
	}
}

func TestWatcher_ReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level00.json"), []byte("{}"), 0o644))

	select {
	case file := <-w.Events:
		assert.Equal(t, "level00.json", file)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the level file")
	}
}

func TestWatcher_WaitsForWritesToSettle(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, "level01.json")
	start := time.Now()
	var last time.Time
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"platforms":[`), 0o644))
		last = time.Now()
		time.Sleep(debounce / 2)
	}
	require.NoError(t, os.WriteFile(path, []byte(`{"platforms":[]}`), 0o644))
	last = time.Now()

	select {
	case file := <-w.Events:
		assert.Equal(t, "level01.json", file)
		assert.GreaterOrEqual(t, time.Since(last), debounce, "reported only after the burst")
		assert.Greater(t, time.Since(start), 5*debounce/2)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the level file")
	}

	select {
	case file := <-w.Events:
		t.Fatalf("burst reported twice: %s", file)
	case <-time.After(3 * debounce):
	}
}

func TestWatcher_Drain(t *testing.T) {
	w := &Watcher{
		Events: make(chan string, 4),
		Errors: make(chan error, 1),
	}
	w.Events <- "level00.json"
	w.Events <- "other.json"
	cache := &fakeCache{known: map[string]bool{"level00.json": true}}

	n := w.Drain(cache, log.New(io.Discard))

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"level00.json", "other.json"}, cache.dropped)
	assert.Equal(t, 0, w.Drain(cache, log.New(io.Discard)), "nothing pending")
}

func TestWatcher_CloseEndsEvents(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	_, ok := <-w.Events
	assert.False(t, ok)
	assert.NoError(t, w.Close(), "close is idempotent")
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
