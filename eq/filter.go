package eq

import "strings"

// FilterType identifies a biquad filter family.
type FilterType int

// Supported filter families. TypeUnknown is the zero value; designing an
// unknown type yields a unity (pass-through) section rather than an error.
const (
	TypeUnknown FilterType = iota
	TypeLowPass
	TypeHighPass
	TypeBandPass
	TypeBandReject
	TypeLowShelf
	TypeHighShelf
	TypePeaking
	TypeAllPass
)

// filterNames maps canonical names for String.
var filterNames = map[FilterType]string{
	TypeUnknown:    "Unknown",
	TypeLowPass:    "LowPass",
	TypeHighPass:   "HighPass",
	TypeBandPass:   "BandPass",
	TypeBandReject: "BandReject",
	TypeLowShelf:   "LowShelf",
	TypeHighShelf:  "HighShelf",
	TypePeaking:    "Peaking",
	TypeAllPass:    "AllPass",
}

// String returns the canonical name of the filter family.
func (t FilterType) String() string {
	if name, ok := filterNames[t]; ok {
		return name
	}

	return "Unknown"
}

// ParseFilterType resolves a filter family from its name.
//
// Matching is case-insensitive. "BandStop" and "Notch" are accepted as
// aliases for the band-reject family. The second return value is false for
// unrecognized names, in which case TypeUnknown is returned.
func ParseFilterType(name string) (FilterType, bool) {
	switch strings.ToLower(name) {
	case "lowpass":
		return TypeLowPass, true
	case "highpass":
		return TypeHighPass, true
	case "bandpass":
		return TypeBandPass, true
	case "bandreject", "bandstop", "notch":
		return TypeBandReject, true
	case "lowshelf":
		return TypeLowShelf, true
	case "highshelf":
		return TypeHighShelf, true
	case "peaking":
		return TypePeaking, true
	case "allpass":
		return TypeAllPass, true
	}

	return TypeUnknown, false
}

// FilterConfig describes one filter in an equalizer chain.
//
// The settings layer is expected to range-clamp all fields before they reach
// this module (frequency within audible/Nyquist-safe bounds, passes in
// [0, 4], Q/Width/Gain defaulted when absent). The design package still
// guards the numerically hazardous cases so any input produces finite
// coefficients.
type FilterConfig struct {
	Type      FilterType
	Frequency float64 // center/cutoff frequency in Hz
	Q         float64 // quality factor; ignored by width-driven and forced-Q families
	Width     float64 // bandwidth in Hz; band-pass/band-reject only
	Gain      float64 // gain in dB; shelf/peaking only
	Passes    int     // cascade count; 0 bypasses the filter
}
