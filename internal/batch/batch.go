package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

// ProcessDirectory transcodes every video in dir, one at a time. A failing
// file is logged and recorded in the report; only an invalid dir aborts.
func (d *implDriver) ProcessDirectory(ctx context.Context, dir string) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	ctx = logger.WithRunID(ctx, report.RunID)

	videos, err := ListVideos(dir)
	if err != nil {
		d.logger.Error(ctx, "Invalid directory: %s", dir)
		return report, err
	}

	for _, out := range d.opts.OutputDirs {
		if err := os.MkdirAll(out, 0755); err != nil {
			return report, fmt.Errorf("create directory %s: %w", out, err)
		}
	}

	startTime := time.Now()
	d.logger.Info(ctx, "Found %d video files in %s", len(videos), dir)

	var totalBytes int64
	for i, video := range videos {
		if err := ctx.Err(); err != nil {
			d.logger.Warn(ctx, "Batch interrupted after %d/%d files: %v", i, len(videos), err)
			break
		}

		filename := filepath.Base(video)
		d.logger.Info(ctx, "[%d/%d] Processing %s...", i+1, len(videos), filename)

		art, err := d.transcoder.Transcode(ctx, video, d.opts.MaxSizeMB)
		if err != nil {
			kind := transcode.KindOf(err)
			report.Failures = append(report.Failures, Failure{File: video, Kind: kind, Err: err})
			if kind == transcode.KindNoAudioTrack {
				d.logger.Warn(ctx, "Skipping %s: no audio track", filename)
			} else {
				d.logger.Error(ctx, "Failed to process %s: %v", filename, err)
			}
			continue
		}

		report.Artifacts = append(report.Artifacts, art)
		totalBytes += art.SizeBytes
	}

	d.logger.Info(ctx, "Batch complete: %d converted (%d cached), %d failed, %s of audio in %s",
		len(report.Artifacts), report.Cached(), len(report.Failures),
		humanize.IBytes(uint64(totalBytes)), time.Since(startTime).Round(time.Millisecond))

	return report, nil
}
