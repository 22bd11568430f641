package algebra

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for algebra constructors and helpers.
var (
	// ErrEmptySequence indicates an empty sample sequence was supplied.
	ErrEmptySequence = errors.New("algebra: sequence must be non-empty")

	// ErrLengthMismatch indicates x and y sample sequences differ in length.
	ErrLengthMismatch = errors.New("algebra: x and y must have the same length")

	// ErrNonAscendingDomain indicates x samples are not strictly ascending.
	ErrNonAscendingDomain = errors.New("algebra: x must be strictly ascending")

	// ErrNonUniformDomain indicates x samples are not uniformly spaced.
	ErrNonUniformDomain = errors.New("algebra: x must be uniformly spaced")

	// ErrInsufficientSamples indicates too few samples for the evaluator.
	ErrInsufficientSamples = errors.New("algebra: not enough samples")

	// ErrBadKernelWindow indicates a kernel window radius below 1.
	ErrBadKernelWindow = errors.New("algebra: kernel window must be >= 1")
)

// DefaultUniformityTolerance is the absolute tolerance used by IsUniform when
// comparing consecutive sample intervals.
const DefaultUniformityTolerance = 1e-10

// Linspace returns count evenly spaced values from start to stop inclusive.
// A count below 2 yields a single-element slice holding start.
func Linspace(start, stop float64, count int) []float64 {
	if count < 2 {
		return []float64{start}
	}
	out := make([]float64, count)
	step := (stop - start) / float64(count-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the last sample to stop so accumulated error never leaks out.
	out[count-1] = stop

	return out
}

// ARange returns values start, start+step, ... strictly below stop.
func ARange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	out := make([]float64, 0, int((stop-start)/step)+1)
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		out = append(out, v)
	}

	return out
}

// Interval returns the spacing between the first two samples of x.
// It is only meaningful for uniform domains; see IsUniform.
func Interval(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return x[1] - x[0]
}

// IsUniform reports whether x is uniformly spaced within
// DefaultUniformityTolerance. Sequences shorter than three samples are
// uniform by definition.
func IsUniform(x []float64) bool {
	if len(x) < 3 {
		return true
	}
	step := x[1] - x[0]
	for i := 2; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > DefaultUniformityTolerance {
			return false
		}
	}

	return true
}

// Tstack stacks per-channel vectors column-wise into rows×channels.
// All vectors must share one length; Tstack(nil) returns nil.
func Tstack(channels [][]float64) [][]float64 {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}
	rows := make([][]float64, len(channels[0]))
	for i := range rows {
		row := make([]float64, len(channels))
		for j, c := range channels {
			row[j] = c[i]
		}
		rows[i] = row
	}

	return rows
}

// Tsplit splits a rows×channels table into per-channel vectors.
// It is the inverse of Tstack.
func Tsplit(rows [][]float64) [][]float64 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	channels := make([][]float64, len(rows[0]))
	for j := range channels {
		col := make([]float64, len(rows))
		for i, r := range rows {
			col[i] = r[j]
		}
		channels[j] = col
	}

	return channels
}

// Lerp evaluates the piecewise-linear function through (x, y) at each query
// point, clamping to the boundary values outside [x[0], x[n-1]].
// x must be strictly ascending; behaviour mirrors numpy.interp.
func Lerp(queries, x, y []float64) []float64 {
	out := make([]float64, len(queries))
	n := len(x)
	for i, q := range queries {
		switch {
		case n == 0:
			out[i] = math.NaN()
		case q <= x[0]:
			out[i] = y[0]
		case q >= x[n-1]:
			out[i] = y[n-1]
		default:
			j := sort.SearchFloat64s(x, q)
			if x[j] == q {
				out[i] = y[j]

				continue
			}
			t := (q - x[j-1]) / (x[j] - x[j-1])
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}

	return out
}

// ClosestIndex returns the index of the sample in x nearest to v.
// Ties resolve to the lower index. x must be ascending and non-empty.
func ClosestIndex(x []float64, v float64) int {
	n := len(x)
	if n == 0 {
		return -1
	}
	j := sort.SearchFloat64s(x, v)
	if j == 0 {
		return 0
	}
	if j == n {
		return n - 1
	}
	if v-x[j-1] <= x[j]-v {
		return j - 1
	}

	return j
}

// SortTogether sorts x ascending in place, permuting y identically.
// Both slices must share one length.
func SortTogether(x, y []float64) {
	sort.Sort(&pairSorter{x: x, y: y})
}

type pairSorter struct {
	x, y []float64
}

func (p *pairSorter) Len() int           { return len(p.x) }
func (p *pairSorter) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p *pairSorter) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.y[i], p.y[j] = p.y[j], p.y[i]
}

// validateXY enforces the shared constructor contract: equal lengths,
// non-empty, strictly ascending x.
func validateXY(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptySequence
	}
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return ErrNonAscendingDomain
		}
	}

	return nil
}
