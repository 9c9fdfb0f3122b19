package response

import (
	"math"

	"github.com/cwbudde/algo-eq/eq"
)

// Point is one sample of a response curve.
type Point struct {
	Frequency float64 // Hz
	Gain      float64 // dB
}

// Curve samples the combined response of an ordered filter list over a
// logarithmically spaced frequency grid.
//
// The result has exactly points entries; entry i sits at
// minFreq*(maxFreq/minFreq)^(i/(points-1)), so the first point is minFreq,
// the last is maxFreq, and spacing is uniform per octave. With no filters
// every gain is exactly 0. points <= 0 yields nil, and points == 1 yields
// the single sample at minFreq.
func Curve(filters []eq.FilterConfig, minFreq, maxFreq float64, points int, sampleRate float64) []Point {
	if points <= 0 {
		return nil
	}

	curve := make([]Point, points)

	if points == 1 {
		curve[0] = Point{
			Frequency: minFreq,
			Gain:      CombinedGainDB(filters, minFreq, sampleRate),
		}

		return curve
	}

	ratio := maxFreq / minFreq
	for i := range curve {
		freq := minFreq * math.Pow(ratio, float64(i)/float64(points-1))
		curve[i] = Point{
			Frequency: freq,
			Gain:      CombinedGainDB(filters, freq, sampleRate),
		}
	}

	return curve
}
