// Package measure verifies equalizer responses empirically.
//
// [ChainResponse] feeds an impulse through a configured biquad cascade,
// transforms the impulse response with an FFT, and returns the per-bin
// magnitude in dB. Comparing the result against the analytic curve from the
// response package catches coefficient or evaluation regressions that a
// purely analytic test cannot.
package measure
