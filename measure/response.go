package measure

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/biquad"
)

// Errors returned by response measurement functions.
var (
	ErrNilChain          = errors.New("measure: chain must not be nil")
	ErrInvalidFFTSize    = errors.New("measure: fft size must be at least 2")
	ErrInvalidSampleRate = errors.New("measure: sample rate must be positive")
)

// gainFloorDB is the floor applied to bins with zero measured magnitude.
const gainFloorDB = -200.0

// Response holds a measured magnitude response over uniformly spaced
// frequency bins from DC up to and including Nyquist.
type Response struct {
	Frequencies []float64 // bin center frequencies in Hz
	GainDB      []float64 // measured magnitude in dB
}

// ChainResponse measures the magnitude response of a biquad cascade by
// transforming fftSize samples of its impulse response. The chain state is
// saved and restored, so measurement does not disturb ongoing processing.
//
// fftSize bounds the frequency resolution (sampleRate/fftSize per bin) and
// the accuracy for long-ringing (high-Q) cascades whose impulse response is
// truncated at fftSize samples.
func ChainResponse(chain *biquad.Chain, fftSize int, sampleRate float64) (Response, error) {
	if chain == nil {
		return Response{}, ErrNilChain
	}

	if fftSize < 2 {
		return Response{}, ErrInvalidFFTSize
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Response{}, ErrInvalidSampleRate
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("measure: failed to create FFT plan: %w", err)
	}

	ir := chain.ImpulseResponse(fftSize)

	buf := make([]complex128, fftSize)
	for i, v := range ir {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return Response{}, fmt.Errorf("measure: forward FFT failed: %w", err)
	}

	// Real input: bins above Nyquist are conjugate-symmetric duplicates.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	resp := Response{
		Frequencies: make([]float64, bins),
		GainDB:      make([]float64, bins),
	}

	binWidth := sampleRate / float64(fftSize)
	for i := 0; i < bins; i++ {
		resp.Frequencies[i] = float64(i) * binWidth

		if mag[i] <= 0 {
			resp.GainDB[i] = gainFloorDB
			continue
		}

		db := 20 * math.Log10(mag[i])
		if db < gainFloorDB {
			db = gainFloorDB
		}

		resp.GainDB[i] = db
	}

	return resp, nil
}
