package transcode

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/nguyentantai21042004/searchinvideos/internal/probe"
)

// Transcode converts videoPath into <AudioDir>/<base>.mp3 whose size
// approximates maxSizeMB. An existing MP3 is returned as-is. Every failure is
// a *Error; the intermediate WAV never outlives the call.
func (t *implTranscoder) Transcode(ctx context.Context, videoPath string, maxSizeMB float64) (Artifact, error) {
	finalPath, tempPath := ArtifactPaths(t.opts.AudioDir, videoPath)

	// Existence is the only cache check.
	if fi, err := os.Stat(finalPath); err == nil && fi.Mode().IsRegular() {
		t.logger.Info(ctx, "Audio file already exists for %s, skipping conversion", videoPath)
		return Artifact{Path: finalPath, SizeBytes: fi.Size(), Cached: true}, nil
	}

	if !(maxSizeMB > 0) {
		return Artifact{}, newError(KindInvalidInput, videoPath, fmt.Errorf("max size must be positive, got %v MB", maxSizeMB))
	}
	if err := checkReadable(videoPath); err != nil {
		return Artifact{}, newError(KindInvalidInput, videoPath, err)
	}

	info, err := probe.Probe(ctx, t.executor, t.opts.FFprobePath, videoPath)
	if err != nil {
		return Artifact{}, newError(KindDecode, videoPath, err)
	}
	if !info.HasAudio() {
		return Artifact{}, newError(KindNoAudioTrack, videoPath, ErrNoAudioTrack)
	}

	if err := os.MkdirAll(t.opts.AudioDir, 0755); err != nil {
		return Artifact{}, newError(KindFilesystem, videoPath, fmt.Errorf("create audio dir: %w", err))
	}

	// From here on the intermediate may exist on disk.
	defer t.cleanupTempFile(ctx, tempPath)

	if err := t.extractAudio(ctx, videoPath, tempPath); err != nil {
		return Artifact{}, newError(KindDecode, videoPath, err)
	}

	tempInfo, err := os.Stat(tempPath)
	if err != nil {
		return Artifact{}, newError(KindFilesystem, videoPath, fmt.Errorf("stat intermediate: %w", err))
	}
	sizeMB := float64(tempInfo.Size()) / bytesPerMB

	bitrate := HighBitrateKbps
	if sizeMB > maxSizeMB {
		wav, err := probe.Probe(ctx, t.executor, t.opts.FFprobePath, tempPath)
		if err != nil {
			return Artifact{}, newError(KindDecode, videoPath, fmt.Errorf("measure intermediate duration: %w", err))
		}
		if wav.Duration <= 0 {
			return Artifact{}, newError(KindDecode, videoPath, fmt.Errorf("intermediate %s reports no duration", tempPath))
		}
		bitrate = SelectBitrate(sizeMB, maxSizeMB, wav.Duration)
		t.logger.Debug(ctx, "Intermediate is %.2f MB over %.1fs, target %v MB -> %dk", sizeMB, wav.Duration, maxSizeMB, bitrate)
	}

	if err := t.encodeMP3(ctx, tempPath, finalPath, bitrate); err != nil {
		// A failed encode must not leave a cache hit behind.
		t.removePartialOutput(ctx, finalPath)
		return Artifact{}, newError(KindEncode, videoPath, err)
	}

	finalInfo, err := os.Stat(finalPath)
	if err != nil {
		return Artifact{}, newError(KindFilesystem, videoPath, fmt.Errorf("stat output: %w", err))
	}

	t.logger.Info(ctx, "Created audio file: %s (%s at %dk)", finalPath, humanize.IBytes(uint64(finalInfo.Size())), bitrate)
	return Artifact{
		Path:        finalPath,
		BitrateKbps: bitrate,
		SizeBytes:   finalInfo.Size(),
	}, nil
}

// checkReadable verifies path is a regular file that can be opened.
func checkReadable(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat video: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("not a regular file")
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open video: %w", err)
	}
	return f.Close()
}
