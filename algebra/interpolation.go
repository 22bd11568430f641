package algebra

import (
	"math"
	"sort"
)

// Interpolator evaluates a fitted sampled function at arbitrary query points.
// Implementations are immutable after construction; Evaluate never fails.
// Queries outside the fitted domain are taken at face value — wrap an
// Interpolator in an Extrapolator to control out-of-domain behaviour.
type Interpolator interface {
	Evaluate(queries []float64) []float64
}

// Kernel is a reconstruction kernel evaluated at a normalized offset from a
// sample position (offset 0 at the sample itself).
type Kernel func(t float64) float64

// sinc is the normalized sinc function sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// NearestNeighbourKernel returns the box kernel selecting the closest sample.
func NearestNeighbourKernel() Kernel {
	return func(t float64) float64 {
		if math.Abs(t) < 0.5 {
			return 1
		}

		return 0
	}
}

// LinearKernel returns the triangle kernel producing piecewise-linear
// reconstruction.
func LinearKernel() Kernel {
	return func(t float64) float64 {
		if a := math.Abs(t); a < 1 {
			return 1 - a
		}

		return 0
	}
}

// SincKernel returns the truncated sinc kernel of taper order a (a >= 1).
func SincKernel(a float64) Kernel {
	return func(t float64) float64 {
		if math.Abs(t) < a {
			return sinc(t)
		}

		return 0
	}
}

// LanczosKernel returns the Lanczos kernel of taper order a (a >= 1), the
// default reconstruction kernel of KernelInterpolator.
func LanczosKernel(a float64) Kernel {
	return func(t float64) float64 {
		if math.Abs(t) < a {
			return sinc(t) * sinc(t/a)
		}

		return 0
	}
}

// KernelInterpolator — windowed kernel reconstruction
//
// Description:
//
//	Reconstructs a continuous function from uniformly spaced samples by
//	summing kernel-weighted contributions of the 2·window samples bracketing
//	each query. The sample set is padded before evaluation: y by reflection
//	(no edge repeat), x by a linear ramp extending the uniform spacing.
//	Window indices are clipped to the padded extent, so queries slightly
//	outside the domain degrade gracefully instead of reading out of bounds.
//
// Errors:
//   - ErrLengthMismatch / ErrEmptySequence  — malformed sample arrays.
//   - ErrNonAscendingDomain                 — x not strictly ascending.
//   - ErrNonUniformDomain                   — x spacing is not constant.
//   - ErrBadKernelWindow                    — window < 1.
//   - ErrInsufficientSamples                — len(y) <= window (reflection
//     padding needs window+1 samples).
//
// Complexity: construction O(n), evaluation O(len(queries)·window).
type KernelInterpolator struct {
	window   int
	kernel   Kernel
	interval float64
	xPadMin  float64 // min of padded x
	xPadMax  float64 // max of padded x
	yPad     []float64
}

// NewKernelInterpolator fits a kernel reconstruction over the uniformly
// spaced samples (x, y). A window radius of 3 with LanczosKernel(3) matches
// the package defaults used by the continuous containers.
func NewKernelInterpolator(x, y []float64, window int, kernel Kernel) (*KernelInterpolator, error) {
	if err := validateXY(x, y); err != nil {
		return nil, err
	}
	if !IsUniform(x) {
		return nil, ErrNonUniformDomain
	}
	if window < 1 {
		return nil, ErrBadKernelWindow
	}
	n := len(y)
	if n <= window {
		return nil, ErrInsufficientSamples
	}
	if kernel == nil {
		kernel = LanczosKernel(3)
	}

	interval := x[1] - x[0]

	// Reflection padding of y: [y[w] … y[1]] + y + [y[n-2] … y[n-1-w]].
	yPad := make([]float64, 0, n+2*window)
	for i := 0; i < window; i++ {
		yPad = append(yPad, y[window-i])
	}
	yPad = append(yPad, y...)
	for i := 0; i < window; i++ {
		yPad = append(yPad, y[n-2-i])
	}

	return &KernelInterpolator{
		window:   window,
		kernel:   kernel,
		interval: interval,
		xPadMin:  x[0] - float64(window)*interval,
		xPadMax:  x[n-1] + float64(window)*interval,
		yPad:     yPad,
	}, nil
}

// Evaluate reconstructs the fitted function at each query point.
func (k *KernelInterpolator) Evaluate(queries []float64) []float64 {
	out := make([]float64, len(queries))
	clipL := k.xPadMin / k.interval
	clipH := k.xPadMax / k.interval
	for i, q := range queries {
		pos := q / k.interval
		base := math.Floor(pos)
		var sum float64
		for w := -k.window + 1; w <= k.window; w++ {
			idx := base + float64(w)
			if idx < clipL {
				idx = clipL
			} else if idx > clipH {
				idx = clipH
			}
			j := int(math.Round(idx - clipL))
			sum += k.yPad[j] * k.kernel(pos-float64(j)-clipL)
		}
		out[i] = sum
	}

	return out
}

// LinearInterpolator evaluates the piecewise-linear function through (x, y).
// Unlike the kernel engine it accepts any strictly ascending domain; queries
// outside the domain clamp to the boundary values.
type LinearInterpolator struct {
	x, y []float64
}

// NewLinearInterpolator fits a piecewise-linear evaluator over (x, y).
func NewLinearInterpolator(x, y []float64) (*LinearInterpolator, error) {
	if err := validateXY(x, y); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, ErrInsufficientSamples
	}

	return &LinearInterpolator{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// Evaluate returns the linear reconstruction at each query point.
func (l *LinearInterpolator) Evaluate(queries []float64) []float64 {
	return Lerp(queries, l.x, l.y)
}

// CubicSplineInterpolator evaluates the natural cubic spline through (x, y):
// C² piecewise cubics with zero second derivative at both endpoints.
// Queries outside the domain follow the boundary cubic segments.
type CubicSplineInterpolator struct {
	x, y []float64
	m    []float64 // second derivatives at the knots
}

// NewCubicSplineInterpolator fits a natural cubic spline over (x, y) by
// solving the knot tridiagonal system with the Thomas algorithm.
// Complexity: O(n) construction, O(log n) per query.
func NewCubicSplineInterpolator(x, y []float64) (*CubicSplineInterpolator, error) {
	if err := validateXY(x, y); err != nil {
		return nil, err
	}
	n := len(x)
	if n < 3 {
		return nil, ErrInsufficientSamples
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for the interior second derivatives; natural
	// boundary rows stay identity with zero right-hand side.
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	diag[0], diag[n-1] = 1, 1
	for i := 1; i < n-1; i++ {
		sub[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		sup[i] = h[i]
		rhs[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}

	// Thomas forward sweep.
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		den := diag[i] - sub[i]*cp[i-1]
		cp[i] = sup[i] / den
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / den
	}

	// Back substitution.
	m := make([]float64, n)
	m[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		m[i] = dp[i] - cp[i]*m[i+1]
	}

	return &CubicSplineInterpolator{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		m: m,
	}, nil
}

// Evaluate returns the spline value at each query point.
func (c *CubicSplineInterpolator) Evaluate(queries []float64) []float64 {
	out := make([]float64, len(queries))
	n := len(c.x)
	for i, q := range queries {
		j := sort.SearchFloat64s(c.x, q) - 1
		if j < 0 {
			j = 0
		} else if j > n-2 {
			j = n - 2
		}
		h := c.x[j+1] - c.x[j]
		t := q - c.x[j]
		a := (c.m[j+1] - c.m[j]) / (6 * h)
		b := c.m[j] / 2
		d := (c.y[j+1]-c.y[j])/h - h*(2*c.m[j]+c.m[j+1])/6
		out[i] = c.y[j] + t*(d+t*(b+t*a))
	}

	return out
}
