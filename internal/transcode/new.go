package transcode

import (
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
	"github.com/nguyentantai21042004/searchinvideos/pkg/executor"
)

// Options locates the output directory and media binaries.
type Options struct {
	AudioDir    string
	FFmpegPath  string
	FFprobePath string
}

type implTranscoder struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcoder instance
func New(opts Options, exec executor.Executor, log logger.Logger) Transcoder {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.FFprobePath == "" {
		opts.FFprobePath = "ffprobe"
	}
	return &implTranscoder{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
