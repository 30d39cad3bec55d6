package transcode

import (
	"path/filepath"
	"strings"
)

const (
	audioExt           = ".mp3"
	intermediateSuffix = "_temp.wav"
)

// BaseName is the video file name without its extension.
func BaseName(videoPath string) string {
	name := filepath.Base(videoPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ArtifactPaths returns the final MP3 path and the intermediate WAV path for
// videoPath inside audioDir.
func ArtifactPaths(audioDir, videoPath string) (finalPath, intermediatePath string) {
	base := BaseName(videoPath)
	return filepath.Join(audioDir, base+audioExt), filepath.Join(audioDir, base+intermediateSuffix)
}
