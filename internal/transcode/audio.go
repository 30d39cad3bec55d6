package transcode

import (
	"context"
	"fmt"
	"strconv"
)

// extractAudio demuxes the first audio stream of videoPath into an
// uncompressed 16-bit WAV at wavPath.
func (t *implTranscoder) extractAudio(ctx context.Context, videoPath, wavPath string) error {
	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: drop video
	// -map 0:a:0: first audio stream only
	// -c:a pcm_s16le: uncompressed intermediate
	args := []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-y",
		"-i", videoPath,
		"-vn",
		"-map", "0:a:0",
		"-c:a", "pcm_s16le",
		"-ar", "44100",
		"-ac", "2",
		wavPath,
	}

	if _, err := t.executor.Execute(ctx, t.opts.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio extracted: %s", wavPath)
	return nil
}

// encodeMP3 encodes wavPath to mp3Path at a constant bitrate in kbps.
func (t *implTranscoder) encodeMP3(ctx context.Context, wavPath, mp3Path string, bitrateKbps int) error {
	t.logger.Info(ctx, "Encoding MP3 at %dk: %s", bitrateKbps, mp3Path)

	args := []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-y",
		"-i", wavPath,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", strconv.Itoa(bitrateKbps) + "k",
		"-f", "mp3",
		mp3Path,
	}

	if _, err := t.executor.Execute(ctx, t.opts.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg encode mp3: %w", err)
	}
	return nil
}
