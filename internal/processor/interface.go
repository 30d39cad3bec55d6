package processor

import "context"

// Processor runs the full per-file pipeline for a single video.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
