// Package response evaluates equalizer gain curves for display.
//
// Gains are expressed in dB and clamped into [eq.MinDB, eq.MaxDB]. Cascaded
// passes of one filter scale its dB contribution linearly, and independent
// filters in series sum in the dB domain, so an ordered filter list reduces
// to a per-frequency sum. [Curve] samples that sum over a log-spaced
// frequency grid suitable for octave-based charting.
//
// All functions are pure and safe for concurrent use.
package response
