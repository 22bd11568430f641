package algebra

import (
	"errors"
)

// ErrBadExtrapolationMethod indicates an unknown ExtrapolationMethod value.
var ErrBadExtrapolationMethod = errors.New("algebra: unknown extrapolation method")

// ExtrapolationMethod selects the behaviour of an Extrapolator outside the
// fitted domain bounds.
type ExtrapolationMethod int

const (
	// ExtrapolateConstant returns the configured Left/Right fill values
	// outside the domain (NaN by default).
	ExtrapolateConstant ExtrapolationMethod = iota

	// ExtrapolateLinear extends the function with the slope of the two
	// outermost samples on each side.
	ExtrapolateLinear
)

// String returns the canonical method name.
func (m ExtrapolationMethod) String() string {
	switch m {
	case ExtrapolateLinear:
		return "Linear"
	default:
		return "Constant"
	}
}

// Extrapolator wraps an Interpolator with a policy for queries outside the
// sampled domain [x[0], x[n-1]]. Inside-domain queries delegate to the
// wrapped interpolator untouched.
type Extrapolator struct {
	interp Interpolator
	method ExtrapolationMethod

	xMin, xMax float64
	yMin, yMax float64
	slopeL     float64
	slopeR     float64
	left       float64
	right      float64
}

// NewExtrapolator builds an extrapolating view over interp, whose fitted
// samples are (x, y). left and right are the Constant-method fill values;
// pass NaN (the containers' default) to mark out-of-domain queries as
// undefined.
func NewExtrapolator(
	interp Interpolator,
	x, y []float64,
	method ExtrapolationMethod,
	left, right float64,
) (*Extrapolator, error) {
	if err := validateXY(x, y); err != nil {
		return nil, err
	}
	if method != ExtrapolateConstant && method != ExtrapolateLinear {
		return nil, ErrBadExtrapolationMethod
	}
	n := len(x)
	e := &Extrapolator{
		interp: interp,
		method: method,
		xMin:   x[0],
		xMax:   x[n-1],
		yMin:   y[0],
		yMax:   y[n-1],
		left:   left,
		right:  right,
	}
	if n > 1 {
		e.slopeL = (y[1] - y[0]) / (x[1] - x[0])
		e.slopeR = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])
	}

	return e, nil
}

// Evaluate returns the extended function value at each query point.
func (e *Extrapolator) Evaluate(queries []float64) []float64 {
	out := make([]float64, len(queries))

	// Batch the in-domain queries so the interpolator sees one call.
	inside := make([]float64, 0, len(queries))
	insideAt := make([]int, 0, len(queries))
	for i, q := range queries {
		switch {
		case q < e.xMin:
			out[i] = e.below(q)
		case q > e.xMax:
			out[i] = e.above(q)
		default:
			inside = append(inside, q)
			insideAt = append(insideAt, i)
		}
	}
	if len(inside) > 0 {
		values := e.interp.Evaluate(inside)
		for k, i := range insideAt {
			out[i] = values[k]
		}
	}

	return out
}

func (e *Extrapolator) below(q float64) float64 {
	if e.method == ExtrapolateLinear {
		return e.yMin + (q-e.xMin)*e.slopeL
	}

	return e.left
}

func (e *Extrapolator) above(q float64) float64 {
	if e.method == ExtrapolateLinear {
		return e.yMax + (q-e.xMax)*e.slopeR
	}

	return e.right
}
