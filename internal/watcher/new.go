package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
)

// Options configures the watched directory and the settle delay applied
// before a new file is handled.
type Options struct {
	Dir         string
	SettleDelay time.Duration
}

// New creates a Watcher on opts.Dir. Files are handled one at a time.
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(opts.Dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		dir:         opts.Dir,
		settleDelay: opts.SettleDelay,
		handler:     handler,
		logger:      log,
		watcher:     fw,
	}, nil
}
