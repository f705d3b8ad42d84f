package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: first\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("name: second\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for got := ""; got != "second"; {
		select {
		case th, ok := <-w.Updates():
			require.True(t, ok, "updates closed early")
			got = th.Name
		case <-w.Errors():
			// Editors may expose a truncated file between writes.
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	_, ok := <-w.Updates()
	assert.False(t, ok)
	_, ok = <-w.Errors()
	assert.False(t, ok)
}

func TestWatcherReportsBadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: ok\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("palette: {x: nothex}\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case <-w.Updates():
		case err := <-w.Errors():
			assert.ErrorContains(t, err, "palette entry x")
			return
		case <-timeout:
			t.Fatal("no error reported")
		}
	}
}

func TestNewWatcherRejectsUnknownExtension(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "theme.json"))
	assert.ErrorContains(t, err, "unknown file extension")
}
