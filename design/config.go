package design

import (
	"github.com/cwbudde/algo-eq/biquad"
	"github.com/cwbudde/algo-eq/eq"
)

// FromConfig derives biquad coefficients for a single filter configuration.
//
// The family determines which parameters are used: low-pass and high-pass
// force the Butterworth Q (cfg.Q is ignored), band-pass and band-reject
// derive Q from cfg.Width, shelf and peaking use cfg.Gain with cfg.Q.
// An unrecognized family yields the unity section, never an error, so a
// malformed configuration cannot crash downstream consumers.
func FromConfig(cfg eq.FilterConfig, sampleRate float64) biquad.Coefficients {
	switch cfg.Type {
	case eq.TypeLowPass:
		return Lowpass(cfg.Frequency, sampleRate)
	case eq.TypeHighPass:
		return Highpass(cfg.Frequency, sampleRate)
	case eq.TypeBandPass:
		return Bandpass(cfg.Frequency, cfg.Width, sampleRate)
	case eq.TypeBandReject:
		return Notch(cfg.Frequency, cfg.Width, sampleRate)
	case eq.TypeLowShelf:
		return LowShelf(cfg.Frequency, cfg.Gain, cfg.Q, sampleRate)
	case eq.TypeHighShelf:
		return HighShelf(cfg.Frequency, cfg.Gain, cfg.Q, sampleRate)
	case eq.TypePeaking:
		return Peak(cfg.Frequency, cfg.Gain, cfg.Q, sampleRate)
	case eq.TypeAllPass:
		return Allpass(cfg.Frequency, cfg.Q, sampleRate)
	}

	return biquad.Identity()
}

// Chain builds a runtime cascade for an ordered filter list. Each active
// filter contributes one section per pass, in filter order; filters with
// Passes <= 0 are bypassed and contribute no sections.
func Chain(filters []eq.FilterConfig, sampleRate float64) *biquad.Chain {
	var coeffs []biquad.Coefficients

	for _, cfg := range filters {
		if cfg.Passes <= 0 {
			continue
		}

		c := FromConfig(cfg, sampleRate)
		if c.IsIdentity() {
			continue
		}

		for p := 0; p < cfg.Passes; p++ {
			coeffs = append(coeffs, c)
		}
	}

	return biquad.NewChain(coeffs)
}
