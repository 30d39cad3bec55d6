package probe

import (
	"context"
	"errors"
	"testing"
)

const sampleMovie = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "disposition": { "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "disposition": { "attached_pic": 0 }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "sample_rate": "48000"
    }
  ],
  "format": {
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "1234.560000",
    "size": "987654321"
  }
}`

const sampleSilent = `{
  "streams": [
    { "index": 0, "codec_name": "h264", "codec_type": "video" }
  ],
  "format": { "format_name": "matroska,webm", "duration": "12.0" }
}`

const sampleStreamDuration = `{
  "streams": [
    { "index": 0, "codec_name": "pcm_s16le", "codec_type": "audio", "duration": "61.5" }
  ],
  "format": { "format_name": "wav" }
}`

func TestParseJSON(t *testing.T) {
	info, err := ParseJSON([]byte(sampleMovie))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !info.HasAudio() {
		t.Fatal("HasAudio() = false, want true")
	}
	if info.VideoStreams != 1 {
		t.Errorf("VideoStreams = %d, want 1 (attached pic excluded)", info.VideoStreams)
	}
	a := info.AudioStreams[0]
	if a.Codec != "aac" || a.Channels != 2 || a.SampleRate != 48000 || a.Index != 2 {
		t.Errorf("audio stream = %+v", a)
	}
	if info.Duration != 1234.56 {
		t.Errorf("Duration = %v, want 1234.56", info.Duration)
	}
	if info.Size != 987654321 {
		t.Errorf("Size = %d", info.Size)
	}
}

func TestParseJSON_NoAudio(t *testing.T) {
	info, err := ParseJSON([]byte(sampleSilent))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if info.HasAudio() {
		t.Error("HasAudio() = true, want false")
	}
}

func TestParseJSON_StreamDurationFallback(t *testing.T) {
	info, err := ParseJSON([]byte(sampleStreamDuration))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if info.Duration != 61.5 {
		t.Errorf("Duration = %v, want 61.5", info.Duration)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("ParseJSON should fail on invalid input")
	}
}

type stubExecutor struct {
	out  string
	err  error
	name string
	args []string
}

func (s *stubExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	s.name = name
	s.args = args
	return s.out, s.err
}

func TestProbe(t *testing.T) {
	exec := &stubExecutor{out: sampleMovie}
	info, err := Probe(context.Background(), exec, "/opt/ffprobe", "movie.mp4")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if exec.name != "/opt/ffprobe" {
		t.Errorf("binary = %q", exec.name)
	}
	if last := exec.args[len(exec.args)-1]; last != "movie.mp4" {
		t.Errorf("last arg = %q, want input path", last)
	}
	if !info.HasAudio() {
		t.Error("expected audio")
	}

	exec = &stubExecutor{err: errors.New("exit status 1")}
	if _, err := Probe(context.Background(), exec, "ffprobe", "broken.mp4"); err == nil {
		t.Error("Probe should surface executor errors")
	}
}
