package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

// Process converts videoPath to MP3 and, when a runner is configured,
// analyzes the result. A video without audio is skipped, not failed.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting video processing: %s", videoPath)

	// Step 1: Convert to MP3
	art, err := p.transcoder.Transcode(ctx, videoPath, p.opts.MaxSizeMB)
	if transcode.IsNoAudioTrack(err) {
		p.logger.Warn(ctx, "Skipping %s: %v", videoPath, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("transcode: %w", err)
	}

	// Step 2: Analyze
	analysisPath := ""
	if p.runner != nil {
		summary := p.runner.Run(ctx, []string{art.Path}, p.opts.Prompt)
		if failed := summary.Failed(); len(failed) > 0 {
			return fmt.Errorf("analyze: %w", failed[0].Err)
		}
		if len(summary.Results) > 0 {
			analysisPath = summary.Results[0].TextPath
		}
	}

	p.logger.Info(ctx, "Processing completed: audio %s (%d kbps, cached=%t)", art.Path, art.BitrateKbps, art.Cached)
	if analysisPath != "" {
		p.logger.Info(ctx, "Analysis: %s", analysisPath)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}
