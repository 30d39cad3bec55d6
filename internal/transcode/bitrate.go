package transcode

const (
	// HighBitrateKbps is used whenever the intermediate already fits.
	HighBitrateKbps = 192
	MinBitrateKbps  = 32
	MaxBitrateKbps  = 192

	bytesPerMB = 1024 * 1024
	kbitsPerMB = 8192
)

// SelectBitrate picks the MP3 bitrate for an intermediate of sizeMB and
// durationSec so that the output lands near maxSizeMB.
func SelectBitrate(sizeMB, maxSizeMB, durationSec float64) int {
	if sizeMB <= maxSizeMB {
		return HighBitrateKbps
	}
	return TargetBitrate(maxSizeMB, durationSec)
}

// TargetBitrate back-calculates kbps from bitrate*duration/8192 = maxSizeMB,
// truncated and clamped to [MinBitrateKbps, MaxBitrateKbps]. Container and
// frame overhead are ignored, so the resulting size is approximate.
func TargetBitrate(maxSizeMB, durationSec float64) int {
	if durationSec <= 0 {
		return MaxBitrateKbps
	}
	raw := maxSizeMB * kbitsPerMB / durationSec
	if raw >= MaxBitrateKbps {
		return MaxBitrateKbps
	}
	return clamp(int(raw), MinBitrateKbps, MaxBitrateKbps)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
