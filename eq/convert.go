package eq

// minBandwidth is the floor applied to bandwidth inputs so the implied Q is
// always finite and positive.
const minBandwidth = 1.0

// minQ is the floor applied to Q inputs so the implied bandwidth is bounded
// for degenerate (zero or negative) quality factors.
const minQ = 0.1

// BandwidthToQ converts a bandwidth in Hz at the given center frequency to
// a quality factor. Bandwidths below 1 Hz (including zero and negative
// values) are treated as 1 Hz, preventing division by zero.
func BandwidthToQ(centerFreq, bandwidth float64) float64 {
	if bandwidth < minBandwidth {
		bandwidth = minBandwidth
	}

	return centerFreq / bandwidth
}

// QToBandwidth converts a quality factor at the given center frequency to a
// bandwidth in Hz. Q values below 0.1 are treated as 0.1, capping the
// maximum implied bandwidth.
func QToBandwidth(centerFreq, q float64) float64 {
	if q < minQ {
		q = minQ
	}

	return centerFreq / q
}

// UsesWidth reports whether a filter family is parameterized by bandwidth
// rather than Q. True for band-pass and band-reject (including its
// BandStop/Notch aliases, which parse to the same family).
func UsesWidth(t FilterType) bool {
	return t == TypeBandPass || t == TypeBandReject
}

// UsesGain reports whether a filter family takes a decibel gain parameter.
// True for the shelf and peaking families.
func UsesGain(t FilterType) bool {
	return t == TypeLowShelf || t == TypeHighShelf || t == TypePeaking
}
