// Package design derives biquad coefficients from equalizer filter
// configurations using the RBJ bilinear-transform ("cookbook") equations.
//
// [FromConfig] dispatches an [eq.FilterConfig] to the designer for its
// family; the per-family functions (Lowpass, Highpass, Bandpass, Notch,
// Allpass, LowShelf, HighShelf, Peak) are also exported for callers that
// already know the family. All designers return finite coefficients for any
// input: out-of-range frequencies and unrecognized families yield the unity
// section instead of an error, so a transiently invalid configuration during
// editing still produces a renderable (flat) response.
package design
