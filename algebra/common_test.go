package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spectra/algebra"
)

// TestLinspace_Endpoints produces count samples pinned to both endpoints.
func TestLinspace_Endpoints(t *testing.T) {
	got := algebra.Linspace(10, 100, 10)
	assert.Len(t, got, 10)
	assert.Equal(t, 10.0, got[0])
	assert.Equal(t, 100.0, got[9])
	assert.InDelta(t, 20.0, got[1], tolerance)
}

// TestARange_HalfOpen excludes the stop value.
func TestARange_HalfOpen(t *testing.T) {
	got := algebra.ARange(0, 10, 1)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	assert.Nil(t, algebra.ARange(0, 10, 0), "non-positive step yields nil")
}

// TestIsUniform_Detection detects regular and irregular spacing.
func TestIsUniform_Detection(t *testing.T) {
	assert.True(t, algebra.IsUniform([]float64{0, 1, 2, 3}))
	assert.True(t, algebra.IsUniform([]float64{0, 10}))
	assert.False(t, algebra.IsUniform([]float64{0, 1, 2.5, 3}))
}

// TestTstackTsplit_Inverse verifies the two packers are mutual inverses.
func TestTstackTsplit_Inverse(t *testing.T) {
	channels := [][]float64{{1, 2, 3}, {10, 20, 30}, {100, 200, 300}}

	rows := algebra.Tstack(channels)
	assert.Equal(t, [][]float64{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}, rows)

	assert.Equal(t, channels, algebra.Tsplit(rows))
	assert.Nil(t, algebra.Tstack(nil))
	assert.Nil(t, algebra.Tsplit(nil))
}

// TestLerp_ClampsAtEdges mirrors numpy.interp boundary behaviour.
func TestLerp_ClampsAtEdges(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{10, 20, 40}

	got := algebra.Lerp([]float64{-5, 0, 0.5, 1.5, 2, 7}, x, y)
	assert.Equal(t, []float64{10, 10, 15, 30, 40, 40}, got)
}

// TestClosestIndex_NearestSample resolves to the nearest sample, lower index
// winning ties.
func TestClosestIndex_NearestSample(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	assert.Equal(t, 0, algebra.ClosestIndex(x, -10))
	assert.Equal(t, 0, algebra.ClosestIndex(x, 0.5))
	assert.Equal(t, 2, algebra.ClosestIndex(x, 1.6))
	assert.Equal(t, 3, algebra.ClosestIndex(x, 99))
	assert.Equal(t, -1, algebra.ClosestIndex(nil, 1))
}

// TestSortTogether_PermutesPairs keeps (x, y) pairs associated.
func TestSortTogether_PermutesPairs(t *testing.T) {
	x := []float64{3, 1, 2}
	y := []float64{30, 10, 20}

	algebra.SortTogether(x, y)
	assert.Equal(t, []float64{1, 2, 3}, x)
	assert.Equal(t, []float64{10, 20, 30}, y)
}
