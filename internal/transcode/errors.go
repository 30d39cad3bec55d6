package transcode

import (
	"errors"
	"fmt"
)

// Kind classifies a transcode failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNoAudioTrack
	KindDecode
	KindEncode
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNoAudioTrack:
		return "no audio track"
	case KindDecode:
		return "decode error"
	case KindEncode:
		return "encode error"
	case KindFilesystem:
		return "filesystem error"
	default:
		return "unknown"
	}
}

// ErrNoAudioTrack is wrapped by KindNoAudioTrack errors.
var ErrNoAudioTrack = errors.New("no audio track found")

// Error is the only error type returned by Transcode.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf returns the Kind of a transcode error, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNoAudioTrack reports whether err means the video has no audio stream.
func IsNoAudioTrack(err error) bool {
	return KindOf(err) == KindNoAudioTrack
}
