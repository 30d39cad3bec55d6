package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/searchinvideos/internal/batch"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
)

type implWatcher struct {
	dir         string
	settleDelay time.Duration
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
}

// Start blocks until ctx is cancelled or the underlying watcher closes.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !batch.IsVideoFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-video file: %s", event.Name)
				continue
			}

			if err := w.handle(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handle waits for the file to settle, then runs the handler inline.
// Only a cancelled context is returned; handler errors are logged.
func (w *implWatcher) handle(ctx context.Context, path string) error {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	w.logger.Info(ctx, "New video detected: %s", path)

	if w.settleDelay > 0 {
		timer := time.NewTimer(w.settleDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
	return nil
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
