package continuous

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectra/algebra"
)

// Signal is a single-channel continuous function reconstructed from discrete
// (domain, range) samples by a configurable interpolator inside the domain
// and a configurable extrapolator outside it.
//
// The stored samples stay sorted by ascending domain. Fitted interpolator
// and extrapolator instances are cached and invalidated on any mutation, so
// repeated evaluation over a stable signal pays the fitting cost once.
//
// Signal is the default Channel implementation of MultiSignals.
type Signal struct {
	domain []float64
	values []float64

	interp InterpolatorConfig
	extrap ExtrapolatorConfig

	// cached fit; nil until first Evaluate after a mutation.
	fitted *algebra.Extrapolator
}

var _ Channel = (*Signal)(nil)

// NewSignal builds a Signal from range values and their domain samples. The
// domain may be nil, in which case the 0..N-1 integer index is used. Domain
// samples must be finite and are sorted ascending together with their
// values. Configuration follows the functional options; unset options take
// the documented defaults (Kernel/Lanczos-3 interpolation, Constant-NaN
// extrapolation).
func NewSignal(values, domain []float64, opts ...Option) (*Signal, error) {
	o := gatherOptions(opts...)
	d, err := resolveDomain(domain, len(values))
	if err != nil {
		return nil, err
	}
	for _, x := range d {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteDomain, x)
		}
	}
	v := append([]float64(nil), values...)
	algebra.SortTogether(d, v)

	return &Signal{
		domain: d,
		values: v,
		interp: o.interp,
		extrap: o.extrap,
	}, nil
}

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.domain) }

// Domain returns a copy of the ordered domain samples.
func (s *Signal) Domain() []float64 { return append([]float64(nil), s.domain...) }

// Range returns a copy of the range values.
func (s *Signal) Range() []float64 { return append([]float64(nil), s.values...) }

// SetDomain replaces the domain in place. Non-finite entries are reported
// through the warning handler and the assignment is skipped, keeping the
// signal usable; a length mismatch is an error.
func (s *Signal) SetDomain(domain []float64) error {
	if len(domain) != len(s.domain) {
		return fmt.Errorf("%w: domain %d vs range %d", ErrDomainRangeLength, len(domain), len(s.values))
	}
	for _, x := range domain {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			warnf("continuous: ignoring domain with non-finite value %v", x)

			return nil
		}
	}
	d := append([]float64(nil), domain...)
	v := append([]float64(nil), s.values...)
	algebra.SortTogether(d, v)
	s.domain, s.values = d, v
	s.fitted = nil

	return nil
}

// SetRange replaces the range values in place.
func (s *Signal) SetRange(values []float64) error {
	if len(values) != len(s.domain) {
		return fmt.Errorf("%w: domain %d vs range %d", ErrDomainRangeLength, len(s.domain), len(values))
	}
	s.values = append([]float64(nil), values...)
	s.fitted = nil

	return nil
}

// Reset atomically replaces domain and range together.
func (s *Signal) Reset(domain, values []float64) error {
	if len(domain) != len(values) {
		return fmt.Errorf("%w: domain %d vs range %d", ErrDomainRangeLength, len(domain), len(values))
	}
	d := append([]float64(nil), domain...)
	v := append([]float64(nil), values...)
	algebra.SortTogether(d, v)
	s.domain, s.values = d, v
	s.fitted = nil

	return nil
}

// InterpolatorConfig returns the interpolation configuration.
func (s *Signal) InterpolatorConfig() InterpolatorConfig { return s.interp }

// SetInterpolatorConfig replaces the interpolation configuration; the
// method name must be registered.
func (s *Signal) SetInterpolatorConfig(cfg InterpolatorConfig) error {
	cfg = cfg.normalised()
	if _, err := lookupInterpolator(cfg.Method); err != nil {
		return err
	}
	s.interp = cfg
	s.fitted = nil

	return nil
}

// ExtrapolatorConfig returns the extrapolation configuration.
func (s *Signal) ExtrapolatorConfig() ExtrapolatorConfig { return s.extrap }

// SetExtrapolatorConfig replaces the extrapolation configuration.
func (s *Signal) SetExtrapolatorConfig(cfg ExtrapolatorConfig) error {
	cfg = cfg.normalised()
	if _, err := cfg.method(); err != nil {
		return err
	}
	s.extrap = cfg
	s.fitted = nil

	return nil
}

// fit builds (or reuses) the interpolator/extrapolator chain.
func (s *Signal) fit() (*algebra.Extrapolator, error) {
	if s.fitted != nil {
		return s.fitted, nil
	}
	if len(s.domain) == 0 {
		return nil, ErrEmptySignal
	}
	factory, err := lookupInterpolator(s.interp.Method)
	if err != nil {
		return nil, err
	}
	interp, err := factory(s.domain, s.values, s.interp)
	if err != nil {
		return nil, err
	}
	method, err := s.extrap.method()
	if err != nil {
		return nil, err
	}
	ex, err := algebra.NewExtrapolator(interp, s.domain, s.values, method, s.extrap.Left, s.extrap.Right)
	if err != nil {
		return nil, err
	}
	s.fitted = ex

	return ex, nil
}

// Evaluate reconstructs the signal at the query points: interpolated inside
// the domain, extrapolated outside it.
func (s *Signal) Evaluate(queries []float64) ([]float64, error) {
	ex, err := s.fit()
	if err != nil {
		return nil, err
	}

	return ex.Evaluate(queries), nil
}

// At evaluates the signal at a single query point.
func (s *Signal) At(query float64) (float64, error) {
	out, err := s.Evaluate([]float64{query})
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// Assign sets values at the given domain points. Points already present are
// overwritten; absent points are inserted and the samples re-sorted, growing
// the domain.
func (s *Signal) Assign(points, values []float64) error {
	if len(points) != len(values) {
		return fmt.Errorf("%w: points %d vs values %d", ErrDomainRangeLength, len(points), len(values))
	}
	for _, x := range points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %v", ErrNonFiniteDomain, x)
		}
	}

	index := make(map[float64]int, len(s.domain))
	for i, x := range s.domain {
		index[x] = i
	}
	d := append([]float64(nil), s.domain...)
	v := append([]float64(nil), s.values...)
	for i, x := range points {
		if j, ok := index[x]; ok {
			v[j] = values[i]

			continue
		}
		index[x] = len(d)
		d = append(d, x)
		v = append(v, values[i])
	}
	algebra.SortTogether(d, v)
	s.domain, s.values = d, v
	s.fitted = nil

	return nil
}

// IsUniform reports whether the domain spacing is constant.
func (s *Signal) IsUniform() bool { return algebra.IsUniform(s.domain) }

// FillNaN replaces NaN range entries. FillInterpolation linearly
// re-interpolates from the finite samples (edge-clamped); FillConstant
// writes the supplied constant.
func (s *Signal) FillNaN(method FillMethod, constant float64) error {
	switch method {
	case FillConstant:
		for i, y := range s.values {
			if math.IsNaN(y) {
				s.values[i] = constant
			}
		}
	case FillInterpolation:
		var fx, fy []float64
		for i, y := range s.values {
			if !math.IsNaN(y) {
				fx = append(fx, s.domain[i])
				fy = append(fy, y)
			}
		}
		if len(fx) == 0 {
			return fmt.Errorf("%w: no finite samples to interpolate from", ErrEmptySignal)
		}
		filled := algebra.Lerp(s.domain, fx, fy)
		for i, y := range s.values {
			if math.IsNaN(y) {
				s.values[i] = filled[i]
			}
		}
	default:
		return fmt.Errorf("%w: fill method %d", ErrUnsupportedInput, int(method))
	}
	s.fitted = nil

	return nil
}

// DomainDistances returns, per query, the absolute distance to the nearest
// existing domain sample (zero when the query is already a sample).
func (s *Signal) DomainDistances(queries []float64) []float64 {
	out := make([]float64, len(queries))
	for i, q := range queries {
		j := algebra.ClosestIndex(s.domain, q)
		if j < 0 {
			out[i] = math.NaN()

			continue
		}
		out[i] = math.Abs(q - s.domain[j])
	}

	return out
}

// Equal reports deep equality of samples and configuration; NaN range
// values compare equal to NaN.
func (s *Signal) Equal(other Channel) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}
	if !s.interp.Equal(other.InterpolatorConfig()) ||
		!s.extrap.Equal(other.ExtrapolatorConfig()) {
		return false
	}
	od, or := other.Domain(), other.Range()
	for i := range s.domain {
		if s.domain[i] != od[i] || !sameFloat(s.values[i], or[i]) {
			return false
		}
	}

	return true
}

// Copy returns a deep, independent copy.
func (s *Signal) Copy() Channel {
	return &Signal{
		domain: append([]float64(nil), s.domain...),
		values: append([]float64(nil), s.values...),
		interp: s.interp,
		extrap: s.extrap,
	}
}
