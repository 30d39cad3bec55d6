package transcode

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// cleanupTempFile removes a transient file; an already-missing file is fine.
func (t *implTranscoder) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
		return
	}
	t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
}

// removePartialOutput deletes whatever a failed encode left at path.
func (t *implTranscoder) removePartialOutput(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		t.logger.Warn(ctx, "Failed to remove partial output %s: %v", path, err)
		return
	}
	t.logger.Info(ctx, "Removed partial output: %s", path)
}
