// Package biquad provides biquad (second-order IIR) filter primitives.
//
// [Coefficients] holds one normalized second-order section as produced by
// the design package. Its response methods evaluate the transfer function
// on the unit circle; they are pure and safe for concurrent use.
//
// [Section] and [Chain] implement Direct Form II Transposed processing for
// offline, batch application of a configured equalizer to recorded sample
// buffers. They carry delay-line state and are not safe for concurrent use.
package biquad
