package batch

import (
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

// Options holds per-batch settings. OutputDirs are created before the first
// file is converted.
type Options struct {
	MaxSizeMB  float64
	OutputDirs []string
}

type implDriver struct {
	opts       Options
	transcoder transcode.Transcoder
	logger     logger.Logger
}

// New creates a new Driver instance
func New(opts Options, tr transcode.Transcoder, log logger.Logger) Driver {
	return &implDriver{
		opts:       opts,
		transcoder: tr,
		logger:     log,
	}
}
