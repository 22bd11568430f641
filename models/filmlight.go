package models

import "math"

// FilmLight T-Log parameters: w is the white-point relative exposure, g the
// gain at zero and o the encoded offset of scene black.
const (
	tLogW = 128.0
	tLogG = 16.0
	tLogO = 0.075
)

// Derived T-Log constants; the curve is a pure log segment joined to a
// linear segment below zero with a continuous slope.
var (
	tLogB  = 1.0 / (0.7107 + 1.2359*math.Log(tLogW*tLogG))
	tLogGS = tLogG / (1.0 - tLogO)
	tLogC  = tLogB / tLogGS
	tLogA  = 1.0 - tLogB*math.Log(tLogW+tLogC)
	tLogY0 = tLogA + tLogB*math.Log(tLogC)
	tLogS  = (1.0 - tLogO) / (1.0 - tLogY0)
	tLogA2 = 1.0 + (tLogA-1.0)*tLogS
	tLogB2 = tLogB * tLogS
	tLogG2 = tLogGS * tLogS
)

// LogEncodingFilmLightTLog encodes a linear scene value with the FilmLight
// T-Log curve. Values below zero fall on the linear extension.
func LogEncodingFilmLightTLog(x float64) float64 {
	if x < 0 {
		return tLogG2*x + tLogO
	}

	return math.Log(x+tLogC)*tLogB2 + tLogA2
}

// LogDecodingFilmLightTLog decodes a FilmLight T-Log value back to linear.
func LogDecodingFilmLightTLog(t float64) float64 {
	if t < tLogO {
		return (t - tLogO) / tLogG2
	}

	return math.Exp((t-tLogA2)/tLogB2) - tLogC
}

// FilmLight E-Gamut normalised primary matrices against the D65 white point
// (CIE 1931 2° observer).
var (
	matrixEGamutToXYZ = matrix3{
		{0.7053968500877708, 0.16404132830991897, 0.08101774865398197},
		{0.2801307240911059, 0.8202066415495949, -0.10033736564070074},
		{-0.10378151156916328, -0.07290725702663062, 1.265746519355672},
	}
	matrixXYZToEGamut = matrix3{
		{1.525052770404748, -0.3159135109347429, -0.12265826460517522},
		{-0.5091525599713284, 1.3333274087321485, 0.13828436514138287},
		{0.09571534531370493, 0.05089744385151598, 0.7879557702853914},
	}
)

// EGamutToXYZ converts linear FilmLight E-Gamut RGB to CIE XYZ tristimulus
// values.
func EGamutToXYZ(rgb [3]float64) [3]float64 { return matrixEGamutToXYZ.apply(rgb) }

// XYZToEGamut converts CIE XYZ tristimulus values to linear FilmLight
// E-Gamut RGB.
func XYZToEGamut(xyz [3]float64) [3]float64 { return matrixXYZToEGamut.apply(xyz) }
