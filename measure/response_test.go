package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/design"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

const sr = 48000.0

func TestChainResponseValidation(t *testing.T) {
	chain := design.Chain(nil, sr)

	if _, err := ChainResponse(nil, 4096, sr); !errors.Is(err, ErrNilChain) {
		t.Fatalf("nil chain: err = %v, want ErrNilChain", err)
	}

	if _, err := ChainResponse(chain, 1, sr); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("fft size 1: err = %v, want ErrInvalidFFTSize", err)
	}

	for _, rate := range []float64{0, -48000, math.NaN(), math.Inf(1)} {
		if _, err := ChainResponse(chain, 4096, rate); !errors.Is(err, ErrInvalidSampleRate) {
			t.Fatalf("rate %v: err = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestChainResponseBinLayout(t *testing.T) {
	chain := design.Chain(nil, sr)

	resp, err := ChainResponse(chain, 1024, sr)
	if err != nil {
		t.Fatalf("ChainResponse: %v", err)
	}

	wantBins := 1024/2 + 1
	if len(resp.Frequencies) != wantBins || len(resp.GainDB) != wantBins {
		t.Fatalf("got %d/%d bins, want %d", len(resp.Frequencies), len(resp.GainDB), wantBins)
	}

	if resp.Frequencies[0] != 0 {
		t.Fatalf("first bin frequency = %v, want 0", resp.Frequencies[0])
	}

	if got := resp.Frequencies[wantBins-1]; math.Abs(got-sr/2) > 1e-9 {
		t.Fatalf("last bin frequency = %v, want Nyquist %v", got, sr/2)
	}
}

func TestEmptyChainMeasuresFlat(t *testing.T) {
	chain := design.Chain(nil, sr)

	resp, err := ChainResponse(chain, 1024, sr)
	if err != nil {
		t.Fatalf("ChainResponse: %v", err)
	}

	testutil.RequireFinite(t, resp.GainDB)

	for i, db := range resp.GainDB {
		if math.Abs(db) > 1e-9 {
			t.Fatalf("bin %d (%v Hz): %v dB, want 0", i, resp.Frequencies[i], db)
		}
	}
}

func TestMeasuredResponseMatchesAnalytic(t *testing.T) {
	filters := []eq.FilterConfig{
		{Type: eq.TypeHighPass, Frequency: 100, Passes: 2},
		{Type: eq.TypeLowPass, Frequency: 8000, Passes: 1},
	}

	chain := design.Chain(filters, sr)

	resp, err := ChainResponse(chain, 4096, sr)
	if err != nil {
		t.Fatalf("ChainResponse: %v", err)
	}

	// Compare against the analytic magnitude at each bin, skipping bins
	// in the deep stopband where truncation noise dominates.
	for i, freq := range resp.Frequencies {
		analytic := chain.MagnitudeDB(freq, sr)
		if analytic < -60 {
			continue
		}

		if diff := math.Abs(resp.GainDB[i] - analytic); diff > 0.5 {
			t.Fatalf("bin %d (%v Hz): measured %v dB vs analytic %v dB", i, freq, resp.GainDB[i], analytic)
		}
	}
}

func TestMeasuredNotchShowsDip(t *testing.T) {
	filters := []eq.FilterConfig{
		{Type: eq.TypeBandReject, Frequency: 3000, Width: 500, Passes: 1},
	}

	chain := design.Chain(filters, sr)

	resp, err := ChainResponse(chain, 4096, sr)
	if err != nil {
		t.Fatalf("ChainResponse: %v", err)
	}

	binWidth := sr / 4096
	center := int(math.Round(3000 / binWidth))
	far := int(math.Round(12000 / binWidth))

	if !(resp.GainDB[center] < resp.GainDB[far]-10) {
		t.Fatalf("notch center %v dB vs far field %v dB, want a clear dip",
			resp.GainDB[center], resp.GainDB[far])
	}
}
