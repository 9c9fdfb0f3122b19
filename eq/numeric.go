package eq

import "math"

// DefaultSampleRate is the sample rate (Hz) of the monitoring pipeline's
// audio path. Callers that evaluate responses for display use this unless
// they have a concrete device rate.
const DefaultSampleRate = 48000.0

// Response gain bounds in dB. Every computed filter or combined response is
// clamped into [MinDB, MaxDB] so downstream consumers always receive a
// renderable value.
const (
	MinDB = -96.0
	MaxDB = 12.0
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
