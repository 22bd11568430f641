package models

import "math"

// SMPTE ST 2084 (PQ) constants.
const (
	st2084M1 = 2610.0 / 16384.0
	st2084M2 = 2523.0 / 4096.0 * 128.0
	st2084C1 = 3424.0 / 4096.0
	st2084C2 = 2413.0 / 4096.0 * 32.0
	st2084C3 = 2392.0 / 4096.0 * 32.0

	// DefaultPeakLuminance is the ST 2084 mastering peak in cd/m².
	DefaultPeakLuminance = 10000.0
)

// EotfInverseST2084 encodes a luminance value C (cd/m²) into a PQ
// non-linear signal in [0, 1], for the given peak luminance.
func EotfInverseST2084(c, peakLuminance float64) float64 {
	y := math.Pow(c/peakLuminance, st2084M1)

	return math.Pow((st2084C1+st2084C2*y)/(1+st2084C3*y), st2084M2)
}

// EotfST2084 decodes a PQ non-linear signal in [0, 1] back into luminance
// (cd/m²), for the given peak luminance. Signals below the PQ black point
// decode to zero.
func EotfST2084(n, peakLuminance float64) float64 {
	v := math.Pow(n, 1/st2084M2)
	num := math.Max(v-st2084C1, 0)

	return peakLuminance * math.Pow(num/(st2084C2-st2084C3*v), 1/st2084M1)
}
