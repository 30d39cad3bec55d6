// Package probe inspects media files with a single ffprobe JSON call.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/searchinvideos/pkg/executor"
)

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index      int
	Codec      string
	Channels   int
	SampleRate int
}

// Info is the parsed result of one ffprobe call. Duration is in seconds.
type Info struct {
	FormatName   string
	Duration     float64
	Size         int64
	VideoStreams int
	AudioStreams []AudioStream
}

// HasAudio reports whether the file carries at least one audio stream.
func (i *Info) HasAudio() bool {
	return len(i.AudioStreams) > 0
}

// Probe runs ffprobe against path and parses the result.
func Probe(ctx context.Context, exec executor.Executor, ffprobePath, path string) (*Info, error) {
	out, err := exec.Execute(ctx, ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON([]byte(out))
}

// ParseJSON converts raw ffprobe JSON output into an Info.
func ParseJSON(data []byte) (*Info, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	info := &Info{
		FormatName: raw.Format.FormatName,
		Duration:   parseFloat(raw.Format.Duration),
		Size:       parseInt64(raw.Format.Size),
	}
	for _, s := range raw.Streams {
		switch s.CodecType {
		case "video":
			if s.Disposition["attached_pic"] != 1 {
				info.VideoStreams++
			}
		case "audio":
			info.AudioStreams = append(info.AudioStreams, AudioStream{
				Index:      s.Index,
				Codec:      s.CodecName,
				Channels:   s.Channels,
				SampleRate: int(parseInt64(s.SampleRate)),
			})
		}
	}

	// Some containers only report duration per stream.
	if info.Duration <= 0 {
		for _, s := range raw.Streams {
			if d := parseFloat(s.Duration); d > info.Duration {
				info.Duration = d
			}
		}
	}
	return info, nil
}

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

type ffprobeStream struct {
	Index       int            `json:"index"`
	CodecName   string         `json:"codec_name"`
	CodecType   string         `json:"codec_type"`
	Channels    int            `json:"channels"`
	SampleRate  string         `json:"sample_rate"`
	Duration    string         `json:"duration"`
	Disposition map[string]int `json:"disposition"`
}

// ffprobe returns numbers as strings.

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
