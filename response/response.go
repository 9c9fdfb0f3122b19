package response

import (
	"math"

	"github.com/cwbudde/algo-eq/design"
	"github.com/cwbudde/algo-eq/eq"
)

// FilterGainDB returns one filter's gain contribution in dB at the given
// frequency, clamped into [eq.MinDB, eq.MaxDB].
//
// A filter with Passes <= 0 is a bypass and contributes exactly 0 without
// any coefficients being designed. Otherwise the single-section dB gain is
// multiplied by the pass count: cascading N identical sections multiplies
// the linear magnitude N times, which is additive in dB, so this scaling
// holds at every frequency rather than only at the cutoff.
func FilterGainDB(cfg eq.FilterConfig, freqHz, sampleRate float64) float64 {
	if cfg.Passes <= 0 {
		return 0
	}

	coeffs := design.FromConfig(cfg, sampleRate)
	mag := coeffs.Magnitude(freqHz, sampleRate)

	db := 20 * math.Log10(mag) * float64(cfg.Passes)

	return eq.Clamp(db, eq.MinDB, eq.MaxDB)
}

// CombinedGainDB returns the summed gain in dB of an ordered filter list at
// the given frequency, clamped into [eq.MinDB, eq.MaxDB].
//
// An empty list yields 0 (flat response). A non-finite individual
// contribution is skipped rather than propagated, so one malformed filter
// cannot corrupt the combined curve.
func CombinedGainDB(filters []eq.FilterConfig, freqHz, sampleRate float64) float64 {
	sum := 0.0

	for _, cfg := range filters {
		db := FilterGainDB(cfg, freqHz, sampleRate)
		if !eq.IsFinite(db) {
			continue
		}

		sum += db
	}

	return eq.Clamp(sum, eq.MinDB, eq.MaxDB)
}
