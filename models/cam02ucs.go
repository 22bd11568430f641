package models

import "math"

// Luo2006Coefficients parameterise the Luo et al. (2006) CAM02 uniform
// colour spaces: KL weights lightness in the colour difference, c1 and c2
// shape the lightness and colourfulness compressions.
type Luo2006Coefficients struct {
	KL float64
	C1 float64
	C2 float64
}

// The three published CAM02 spaces: large colour differences, small colour
// differences and the general-purpose UCS.
var (
	CAM02LCD = Luo2006Coefficients{KL: 0.77, C1: 0.007, C2: 0.0053}
	CAM02SCD = Luo2006Coefficients{KL: 1.24, C1: 0.007, C2: 0.0363}
	CAM02UCS = Luo2006Coefficients{KL: 1.00, C1: 0.007, C2: 0.0228}
)

// JMhToCAM02UCS projects CIECAM02 (J, M, h) correlates into the uniform
// space: lightness is compressed to J', colourfulness to M', and M' is
// resolved into Cartesian (a', b') along the hue angle h (degrees).
func JMhToCAM02UCS(jmh [3]float64, coeffs Luo2006Coefficients) [3]float64 {
	j, m, h := jmh[0], jmh[1], jmh[2]

	jp := ((1 + 100*coeffs.C1) * j) / (1 + coeffs.C1*j)
	mp := (1 / coeffs.C2) * math.Log(1+coeffs.C2*m)
	hr := h * math.Pi / 180

	return [3]float64{jp, mp * math.Cos(hr), mp * math.Sin(hr)}
}

// CAM02UCSToJMh inverts JMhToCAM02UCS. The hue angle is recovered with
// atan2 over (b', a') and normalised to [0, 360), which keeps the full
// circle unambiguous.
func CAM02UCSToJMh(jab [3]float64, coeffs Luo2006Coefficients) [3]float64 {
	jp, ap, bp := jab[0], jab[1], jab[2]

	j := -jp / (coeffs.C1*jp - 1 - 100*coeffs.C1)
	mp := math.Hypot(ap, bp)
	m := (math.Exp(mp*coeffs.C2) - 1) / coeffs.C2
	h := math.Atan2(bp, ap) * 180 / math.Pi
	if h < 0 {
		h += 360
	}

	return [3]float64{j, m, h}
}

// DeltaELuo2006 is the Euclidean colour difference of the Luo et al.
// (2006) spaces, with lightness weighted by KL.
func DeltaELuo2006(a, b [3]float64, coeffs Luo2006Coefficients) float64 {
	dj := (a[0] - b[0]) / coeffs.KL
	da := a[1] - b[1]
	db := a[2] - b[2]

	return math.Sqrt(dj*dj + da*da + db*db)
}
