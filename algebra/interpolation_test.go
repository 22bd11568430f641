package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/algebra"
)

const tolerance = 1e-7

// rampData returns the canonical fixture: domain 0..9, range 10..100 step 10.
func rampData() (x, y []float64) {
	x = algebra.ARange(0, 10, 1)
	y = algebra.Linspace(10, 100, 10)

	return x, y
}

// TestKernelInterpolator_GoldenLanczos verifies the default Lanczos-3 kernel
// against independently computed reference values.
func TestKernelInterpolator_GoldenLanczos(t *testing.T) {
	x, y := rampData()
	ki, err := algebra.NewKernelInterpolator(x, y, 3, algebra.LanczosKernel(3))
	require.NoError(t, err)

	got := ki.Evaluate(algebra.Linspace(0, 5, 5))
	want := []float64{10, 22.83489024, 34.80044921, 47.55353925, 60}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "query %d", i)
	}
}

// TestKernelInterpolator_GoldenNarrowWindow verifies window=1 with a
// Lanczos-1 kernel against reference values.
func TestKernelInterpolator_GoldenNarrowWindow(t *testing.T) {
	x, y := rampData()
	ki, err := algebra.NewKernelInterpolator(x, y, 1, algebra.LanczosKernel(1))
	require.NoError(t, err)

	got := ki.Evaluate(algebra.Linspace(0, 5, 5))
	want := []float64{10, 18.91328761, 28.36993142, 44.13100443, 60}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "query %d", i)
	}
}

// TestKernelInterpolator_ExactAtSamples confirms reconstruction passes
// through the samples themselves.
func TestKernelInterpolator_ExactAtSamples(t *testing.T) {
	x, y := rampData()
	ki, err := algebra.NewKernelInterpolator(x, y, 3, nil)
	require.NoError(t, err)

	got := ki.Evaluate(x)
	for i := range y {
		assert.InDelta(t, y[i], got[i], tolerance, "sample %d", i)
	}
}

// TestKernelInterpolator_NonUniformDomain rejects irregular spacing.
func TestKernelInterpolator_NonUniformDomain(t *testing.T) {
	x := []float64{0, 1, 2.5, 3, 4}
	y := []float64{1, 2, 3, 4, 5}

	_, err := algebra.NewKernelInterpolator(x, y, 3, nil)
	assert.ErrorIs(t, err, algebra.ErrNonUniformDomain)
}

// TestKernelInterpolator_InsufficientSamples rejects len(y) <= window.
func TestKernelInterpolator_InsufficientSamples(t *testing.T) {
	_, err := algebra.NewKernelInterpolator([]float64{0, 1, 2}, []float64{1, 2, 3}, 3, nil)
	assert.ErrorIs(t, err, algebra.ErrInsufficientSamples)
}

// TestKernelInterpolator_BadWindow rejects window < 1.
func TestKernelInterpolator_BadWindow(t *testing.T) {
	x, y := rampData()
	_, err := algebra.NewKernelInterpolator(x, y, 0, nil)
	assert.ErrorIs(t, err, algebra.ErrBadKernelWindow)
}

// TestLinearInterpolator_Midpoints checks exact linear reconstruction.
func TestLinearInterpolator_Midpoints(t *testing.T) {
	x, y := rampData()
	li, err := algebra.NewLinearInterpolator(x, y)
	require.NoError(t, err)

	got := li.Evaluate([]float64{0.5, 4.5, 8.5})
	want := []float64{15, 55, 95}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance)
	}
}

// TestLinearInterpolator_LengthMismatch rejects ragged samples.
func TestLinearInterpolator_LengthMismatch(t *testing.T) {
	_, err := algebra.NewLinearInterpolator([]float64{0, 1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, algebra.ErrLengthMismatch)
}

// TestCubicSplineInterpolator_LinearData reproduces linear data exactly: the
// natural spline of a straight line is that line.
func TestCubicSplineInterpolator_LinearData(t *testing.T) {
	x, y := rampData()
	cs, err := algebra.NewCubicSplineInterpolator(x, y)
	require.NoError(t, err)

	got := cs.Evaluate(algebra.Linspace(0, 5, 5))
	want := []float64{10, 22.5, 35, 47.5, 60}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance)
	}
}

// TestCubicSplineInterpolator_GoldenSine checks the spline on a half-sine
// sample set against independently computed values.
func TestCubicSplineInterpolator_GoldenSine(t *testing.T) {
	x, _ := rampData()
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Sin(v/9*math.Pi) * 100
	}
	cs, err := algebra.NewCubicSplineInterpolator(x, y)
	require.NoError(t, err)

	got := cs.Evaluate([]float64{2.5, 4.5, 6.5})
	want := []float64{76.60139140, 99.99601471, 76.60139140}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance)
	}
}

// TestCubicSplineInterpolator_NotAscending rejects unsorted domains.
func TestCubicSplineInterpolator_NotAscending(t *testing.T) {
	_, err := algebra.NewCubicSplineInterpolator([]float64{0, 2, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, algebra.ErrNonAscendingDomain)
}

// TestKernels_Shapes spot-checks the kernel family at characteristic offsets.
func TestKernels_Shapes(t *testing.T) {
	assert.Equal(t, 1.0, algebra.NearestNeighbourKernel()(0.2))
	assert.Equal(t, 0.0, algebra.NearestNeighbourKernel()(0.7))

	assert.InDelta(t, 0.25, algebra.LinearKernel()(0.75), tolerance)
	assert.Equal(t, 0.0, algebra.LinearKernel()(1.0))

	assert.InDelta(t, 1.0, algebra.SincKernel(3)(0), tolerance)
	assert.Equal(t, 0.0, algebra.SincKernel(3)(3))

	assert.InDelta(t, 1.0, algebra.LanczosKernel(3)(0), tolerance)
	assert.InDelta(t, 0.0, algebra.LanczosKernel(3)(1), tolerance)
	assert.Equal(t, 0.0, algebra.LanczosKernel(3)(3.5))
}
