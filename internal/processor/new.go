package processor

import (
	"github.com/nguyentantai21042004/searchinvideos/internal/analysis"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

// Options holds the per-file settings.
type Options struct {
	MaxSizeMB float64
	Prompt    string
}

type implProcessor struct {
	opts       Options
	transcoder transcode.Transcoder
	runner     analysis.Runner
	logger     logger.Logger
}

// New creates a new Processor instance. A nil runner turns analysis off.
func New(opts Options, tr transcode.Transcoder, runner analysis.Runner, log logger.Logger) Processor {
	return &implProcessor{
		opts:       opts,
		transcoder: tr,
		runner:     runner,
		logger:     log,
	}
}
