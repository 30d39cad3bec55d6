package batch

import (
	"context"

	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

// Driver runs every video in a directory through the Transcoder.
type Driver interface {
	ProcessDirectory(ctx context.Context, dir string) (Report, error)
}

// Failure records one video that could not be converted.
type Failure struct {
	File string
	Kind transcode.Kind
	Err  error
}

// Report lists artifacts in processing order and the files that failed.
type Report struct {
	RunID     string
	Artifacts []transcode.Artifact
	Failures  []Failure
}

// Paths returns the artifact paths in processing order.
func (r Report) Paths() []string {
	paths := make([]string, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

// Cached counts artifacts that already existed.
func (r Report) Cached() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Cached {
			n++
		}
	}
	return n
}
