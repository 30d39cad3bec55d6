package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
)

func TestWatcherHandlesNewVideos(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)

	handler := func(ctx context.Context, path string) error {
		assert.NotEmpty(t, logger.RunID(ctx))
		seen <- filepath.Base(path)
		if filepath.Base(path) == "bad.mp4" {
			return errors.New("boom")
		}
		return nil
	}

	w, err := New(Options{Dir: dir, SettleDelay: 10 * time.Millisecond}, handler, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	for _, name := range []string{"notes.txt", "bad.mp4", "clip.MOV"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	var got []string
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case name := <-seen:
			got = append(got, name)
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", got)
		}
	}
	assert.Equal(t, []string{"bad.mp4", "clip.MOV"}, got)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}

	select {
	case name := <-seen:
		t.Fatalf("unexpected event for %s", name)
	default:
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	_, err := New(Options{Dir: filepath.Join(t.TempDir(), "missing")}, nil, logger.Nop())
	assert.Error(t, err)
}
