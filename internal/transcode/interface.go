package transcode

import "context"

// Transcoder converts one video into one size-bounded MP3.
type Transcoder interface {
	Transcode(ctx context.Context, videoPath string, maxSizeMB float64) (Artifact, error)
}

// Artifact is a final MP3 on disk. Cached is set when the file already
// existed and no work was done; BitrateKbps is zero in that case.
type Artifact struct {
	Path        string
	BitrateKbps int
	SizeBytes   int64
	Cached      bool
}
