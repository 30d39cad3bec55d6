// Package mediatest provides a fake executor that stands in for ffmpeg and
// ffprobe in tests. It writes sparse output files so size-dependent logic can
// be exercised without real media.
package mediatest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/searchinvideos/pkg/executor"
)

const (
	FFmpeg  = "ffmpeg"
	FFprobe = "ffprobe"

	// VideoWithAudio is the default probe answer for input videos.
	VideoWithAudio = `{"streams":[{"index":0,"codec_type":"video","codec_name":"h264"},{"index":1,"codec_type":"audio","codec_name":"aac","channels":2,"sample_rate":"48000"}],"format":{"format_name":"mov,mp4","duration":"60.0"}}`
	// VideoWithoutAudio has a single video stream.
	VideoWithoutAudio = `{"streams":[{"index":0,"codec_type":"video","codec_name":"h264"}],"format":{"format_name":"matroska","duration":"60.0"}}`
)

// Call records one command invocation.
type Call struct {
	Name string
	Args []string
}

// Executor simulates ffprobe and ffmpeg. Maps are keyed by file base name.
type Executor struct {
	mu sync.Mutex

	Probes      map[string]string // base name -> ffprobe JSON
	FailProbe   map[string]bool   // base name of probed file
	FailExtract map[string]bool   // base name of the input video
	FailEncode  map[string]bool   // base name of the final mp3

	WAVBytes    int64   // size of the intermediate written by the demux step
	WAVDuration float64 // duration reported when probing the intermediate
	MP3Bytes    int64

	Calls []Call
}

var _ executor.Executor = (*Executor)(nil)

// New returns an Executor with small default outputs.
func New() *Executor {
	return &Executor{
		Probes:      map[string]string{},
		FailProbe:   map[string]bool{},
		FailExtract: map[string]bool{},
		FailEncode:  map[string]bool{},
		WAVBytes:    1 << 20,
		WAVDuration: 60,
		MP3Bytes:    256 << 10,
	}
}

func (e *Executor) Execute(_ context.Context, name string, args ...string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Calls = append(e.Calls, Call{Name: name, Args: append([]string(nil), args...)})

	switch name {
	case FFprobe:
		return e.probe(args)
	case FFmpeg:
		return "", e.ffmpeg(args)
	default:
		return "", fmt.Errorf("mediatest: unexpected command %q", name)
	}
}

func (e *Executor) probe(args []string) (string, error) {
	path := args[len(args)-1]
	base := filepath.Base(path)
	if e.FailProbe[base] {
		return "", &executor.CommandError{Name: FFprobe, Stderr: "Invalid data found when processing input", Err: errors.New("exit status 1")}
	}
	if out, ok := e.Probes[base]; ok {
		return out, nil
	}
	if strings.HasSuffix(path, ".wav") {
		return fmt.Sprintf(`{"streams":[{"index":0,"codec_type":"audio","codec_name":"pcm_s16le"}],"format":{"format_name":"wav","duration":"%f"}}`, e.WAVDuration), nil
	}
	return VideoWithAudio, nil
}

func (e *Executor) ffmpeg(args []string) error {
	input := argAfter(args, "-i")
	output := args[len(args)-1]

	switch {
	case strings.HasSuffix(output, ".wav"):
		if e.FailExtract[filepath.Base(input)] {
			_ = writeSparse(output, 128)
			return &executor.CommandError{Name: FFmpeg, Stderr: "Error while decoding stream", Err: errors.New("exit status 1")}
		}
		return writeSparse(output, e.WAVBytes)
	case strings.HasSuffix(output, ".mp3"):
		if e.FailEncode[filepath.Base(output)] {
			_ = writeSparse(output, 64)
			return &executor.CommandError{Name: FFmpeg, Stderr: "Error while opening encoder", Err: errors.New("exit status 1")}
		}
		return writeSparse(output, e.MP3Bytes)
	default:
		return fmt.Errorf("mediatest: unexpected output %q", output)
	}
}

// Count returns how many times the named binary was invoked.
func (e *Executor) Count(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, c := range e.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Bitrate returns the -b:a value of the last encode that wrote output base name.
func (e *Executor) Bitrate(outputBase string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := len(e.Calls) - 1; i >= 0; i-- {
		c := e.Calls[i]
		if c.Name == FFmpeg && filepath.Base(c.Args[len(c.Args)-1]) == outputBase {
			return argAfter(c.Args, "-b:a")
		}
	}
	return ""
}

// Touch creates an empty file and returns its path.
func Touch(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func argAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func writeSparse(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
