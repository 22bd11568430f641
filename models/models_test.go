package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spectra/models"
)

const tolerance = 1e-7

// assertTriplet compares a triplet against reference values within the
// shared tolerance.
func assertTriplet(t *testing.T, want, got [3]float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "component %d", i)
	}
}

// TestEotfST2084_GoldenPair verifies the PQ transfer pair at a reference
// luminance.
func TestEotfST2084_GoldenPair(t *testing.T) {
	n := models.EotfInverseST2084(100, models.DefaultPeakLuminance)
	assert.InDelta(t, 0.508078421517399, n, tolerance)
	assert.InDelta(t, 100.0, models.EotfST2084(n, models.DefaultPeakLuminance), 1e-6)
}

// TestEotfST2084_BlackPoint verifies sub-black signals decode to zero.
func TestEotfST2084_BlackPoint(t *testing.T) {
	assert.Equal(t, 0.0, models.EotfST2084(0, models.DefaultPeakLuminance))
}

// TestRGBToICtCp_Golden verifies the BT.2100 reference conversion.
func TestRGBToICtCp_Golden(t *testing.T) {
	got := models.RGBToICtCp(
		[3]float64{0.45620519, 0.03081071, 0.04091952},
		models.DefaultPeakLuminance,
	)
	assertTriplet(t, [3]float64{0.07351364, 0.00475253, 0.09351596}, got)
}

// TestICtCp_RoundTrip verifies RGB survives the forward/inverse pair.
func TestICtCp_RoundTrip(t *testing.T) {
	rgb := [3]float64{0.45620519, 0.03081071, 0.04091952}
	got := models.ICtCpToRGB(models.RGBToICtCp(rgb, models.DefaultPeakLuminance), models.DefaultPeakLuminance)
	assertTriplet(t, rgb, got)
}

// TestJMhToCAM02UCS_Golden verifies all three Luo (2006) spaces against
// reference values.
func TestJMhToCAM02UCS_Golden(t *testing.T) {
	jmh := [3]float64{41.73109113, 0.10873867, 219.04843202}

	assertTriplet(t, [3]float64{54.90433134, -0.08442362, -0.06848314},
		models.JMhToCAM02UCS(jmh, models.CAM02LCD))
	assertTriplet(t, [3]float64{54.90433134, -0.08428171, -0.06836803},
		models.JMhToCAM02UCS(jmh, models.CAM02SCD))
	assertTriplet(t, [3]float64{54.90433134, -0.08434343, -0.06841809},
		models.JMhToCAM02UCS(jmh, models.CAM02UCS))
}

// TestCAM02UCS_RoundTrip verifies JMh survives the forward/inverse pair in
// every space, including hue normalisation to [0, 360).
func TestCAM02UCS_RoundTrip(t *testing.T) {
	jmh := [3]float64{41.73109113, 0.10873867, 219.04843202}
	for _, coeffs := range []models.Luo2006Coefficients{models.CAM02LCD, models.CAM02SCD, models.CAM02UCS} {
		got := models.CAM02UCSToJMh(models.JMhToCAM02UCS(jmh, coeffs), coeffs)
		assertTriplet(t, jmh, got)
	}
}

// TestLogEncodingFilmLightTLog_Golden verifies the T-Log encoding at
// mid-grey and the segment boundaries.
func TestLogEncodingFilmLightTLog_Golden(t *testing.T) {
	assert.InDelta(t, 0.396567801298332, models.LogEncodingFilmLightTLog(0.18), tolerance)
	assert.InDelta(t, 0.075, models.LogEncodingFilmLightTLog(0), tolerance)
	assert.InDelta(t, 0.5525378810058589, models.LogEncodingFilmLightTLog(1), tolerance)
}

// TestFilmLightTLog_RoundTrip verifies encode/decode inversion across both
// curve segments, including negative scene values.
func TestFilmLightTLog_RoundTrip(t *testing.T) {
	for _, x := range []float64{-0.1, 0, 0.01, 0.18, 1, 10} {
		got := models.LogDecodingFilmLightTLog(models.LogEncodingFilmLightTLog(x))
		assert.InDelta(t, x, got, tolerance, "linear value %v", x)
	}
}

// TestEGamut_Golden verifies the E-Gamut to XYZ conversion against the
// normalised primary matrix for D65.
func TestEGamut_Golden(t *testing.T) {
	got := models.EGamutToXYZ([3]float64{0.18, 0.05, 0.9})
	assertTriplet(t, [3]float64{0.20808947321987845, 0.0011302333372481405, 1.116845832486324}, got)
}

// TestEGamut_RoundTrip verifies RGB survives the XYZ conversion pair.
func TestEGamut_RoundTrip(t *testing.T) {
	rgb := [3]float64{0.18, 0.05, 0.9}
	assertTriplet(t, rgb, models.XYZToEGamut(models.EGamutToXYZ(rgb)))
}

// TestDeltaELuo2006 verifies the KL-weighted Euclidean difference.
func TestDeltaELuo2006(t *testing.T) {
	a := [3]float64{54.9, -0.084, -0.068}
	assert.InDelta(t, 0.0, models.DeltaELuo2006(a, a, models.CAM02UCS), tolerance)

	b := [3]float64{55.9, -0.084, -0.068}
	assert.InDelta(t, 1.0, models.DeltaELuo2006(a, b, models.CAM02UCS), tolerance)
	assert.InDelta(t, 1/0.77, models.DeltaELuo2006(a, b, models.CAM02LCD), tolerance)
}
