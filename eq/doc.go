// Package eq defines the equalizer filter model shared by the design and
// response packages.
//
// A [FilterConfig] describes one filter in an ordered equalizer chain: its
// family ([FilterType]), center/cutoff frequency, and the family-specific
// parameters (Q, bandwidth, gain) plus a cascade pass count. Configurations
// are plain values produced by an external settings layer; nothing in this
// module mutates or retains them.
//
// The package also carries the bandwidth/Q conversions and parameter
// predicates a settings UI needs to decide which input fields apply to a
// given filter family, and the shared numeric helpers (clamping, dB/linear
// conversion) used throughout the module.
package eq
