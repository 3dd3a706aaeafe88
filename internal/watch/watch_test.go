package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCallsBackOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(file, []byte("display\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	calls := 0
	w, err := NewWatcher(file, func() error {
		calls++
		cancel()
		return nil
	}, func(err error) { t.Log(err) })
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to start receiving events.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("population-total\n"), 0o644))

	require.NoError(t, <-done)
	require.Equal(t, 1, calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	w, err := NewWatcher(file, func() error { return nil }, func(error) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx))
}
