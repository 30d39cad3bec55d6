package transcode

import (
	"errors"
	"fmt"
	"os/exec"
)

var (
	ErrFFmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFFprobeNotFound = errors.New("ffprobe not found on PATH")
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CheckDeps verifies that the ffmpeg and ffprobe binaries resolve.
func CheckDeps(ffmpegPath, ffprobePath string) error {
	if _, err := lookPath(ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, ffmpegPath)
	}
	if _, err := lookPath(ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, ffprobePath)
	}
	return nil
}
