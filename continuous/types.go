// Package continuous: shared types, sentinel errors, functional options,
// interpolator registry and the tagged input union consumed by the
// MultiSignals constructor.
package continuous

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/katalvlaran/spectra/algebra"
)

// Sentinel errors for the continuous containers.
var (
	// ErrDomainRangeLength indicates domain and range cardinalities differ.
	ErrDomainRangeLength = errors.New("continuous: domain and range must have the same length")

	// ErrNonFiniteDomain indicates a domain holding NaN or ±Inf at construction.
	ErrNonFiniteDomain = errors.New("continuous: domain contains non-finite values")

	// ErrUnsupportedInput indicates an input shape Unpack cannot normalise.
	ErrUnsupportedInput = errors.New("continuous: unsupported input shape")

	// ErrEmptySignal indicates evaluation of a signal with no samples.
	ErrEmptySignal = errors.New("continuous: signal has no samples to evaluate")

	// ErrEmptyContainer indicates evaluation of a container with no channels.
	ErrEmptyContainer = errors.New("continuous: container has no channels to evaluate")

	// ErrLabelCardinality indicates labels and channel counts differ.
	ErrLabelCardinality = errors.New("continuous: labels must match channel count")

	// ErrUnknownInterpolator indicates an unregistered interpolator method name.
	ErrUnknownInterpolator = errors.New("continuous: unknown interpolator method")

	// ErrUnknownExtrapolator indicates an unknown extrapolator method name.
	ErrUnknownExtrapolator = errors.New("continuous: unknown extrapolator method")

	// ErrUnknownOperator indicates an operator outside {+, -, *, /, **}.
	ErrUnknownOperator = errors.New("continuous: unknown arithmetical operator")

	// ErrOperandShape indicates an operand incompatible with the range shape.
	ErrOperandShape = errors.New("continuous: operand shape does not match range")

	// ErrIndexRange indicates an out-of-bounds positional row/column span.
	ErrIndexRange = errors.New("continuous: index span out of range")

	// ErrTabularUnsupported indicates the tabular capability is absent; import
	// the table package (or register a builder) to enable it.
	ErrTabularUnsupported = errors.New("continuous: tabular capability unavailable")
)

// Interpolator method names seeded into the registry.
const (
	// InterpolatorKernel is the default windowed-kernel reconstruction.
	InterpolatorKernel = "Kernel"

	// InterpolatorLinear is piecewise-linear reconstruction.
	InterpolatorLinear = "Linear"

	// InterpolatorCubicSpline is natural cubic-spline reconstruction.
	InterpolatorCubicSpline = "CubicSpline"
)

// Extrapolator method names.
const (
	// ExtrapolatorConstant fills out-of-domain queries with Left/Right values.
	ExtrapolatorConstant = "Constant"

	// ExtrapolatorLinear extends out-of-domain queries with endpoint slopes.
	ExtrapolatorLinear = "Linear"
)

// DEFAULTS — single source of truth for zero-value behaviour.
const (
	// DefaultInterpolator is the interpolator method of new signals.
	DefaultInterpolator = InterpolatorKernel

	// DefaultKernelWindow is the kernel window radius.
	DefaultKernelWindow = 3

	// DefaultKernelScale is the Lanczos taper order.
	DefaultKernelScale = 3.0

	// DefaultExtrapolator is the extrapolator method of new signals;
	// the Constant method fills with NaN on both sides by default.
	DefaultExtrapolator = ExtrapolatorConstant

	// DefaultFillConstant is the replacement value of FillConstant.
	DefaultFillConstant = 0.0
)

// InterpolatorConfig selects and parameterises the interpolation strategy of
// a signal. Window and Scale apply to the kernel method; zero values resolve
// to the documented defaults so the zero InterpolatorConfig is valid.
type InterpolatorConfig struct {
	Method string
	Window int
	Scale  float64
}

// normalised resolves zero fields to the documented defaults.
func (c InterpolatorConfig) normalised() InterpolatorConfig {
	if c.Method == "" {
		c.Method = DefaultInterpolator
	}
	if c.Window == 0 {
		c.Window = DefaultKernelWindow
	}
	if c.Scale == 0 {
		c.Scale = DefaultKernelScale
	}

	return c
}

// Equal reports configuration equality after default resolution.
func (c InterpolatorConfig) Equal(o InterpolatorConfig) bool {
	a, b := c.normalised(), o.normalised()

	return a.Method == b.Method && a.Window == b.Window && a.Scale == b.Scale
}

// ExtrapolatorConfig selects and parameterises the extrapolation strategy.
// Left and Right are the Constant-method fills; NewExtrapolatorConfig seeds
// them with NaN, the containers' undefined-outside-domain sentinel.
type ExtrapolatorConfig struct {
	Method string
	Left   float64
	Right  float64
}

// NewExtrapolatorConfig returns the default extrapolation configuration:
// Constant with NaN fills on both sides.
func NewExtrapolatorConfig() ExtrapolatorConfig {
	return ExtrapolatorConfig{
		Method: DefaultExtrapolator,
		Left:   math.NaN(),
		Right:  math.NaN(),
	}
}

func (c ExtrapolatorConfig) normalised() ExtrapolatorConfig {
	if c.Method == "" {
		c.Method = DefaultExtrapolator
	}

	return c
}

// Equal reports configuration equality; NaN fills compare equal to NaN.
func (c ExtrapolatorConfig) Equal(o ExtrapolatorConfig) bool {
	a, b := c.normalised(), o.normalised()

	return a.Method == b.Method &&
		sameFloat(a.Left, b.Left) &&
		sameFloat(a.Right, b.Right)
}

// method resolves the extrapolator name to the algebra enum.
func (c ExtrapolatorConfig) method() (algebra.ExtrapolationMethod, error) {
	switch c.normalised().Method {
	case ExtrapolatorConstant:
		return algebra.ExtrapolateConstant, nil
	case ExtrapolatorLinear:
		return algebra.ExtrapolateLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownExtrapolator, c.Method)
	}
}

// sameFloat compares floats treating NaN as equal to NaN, so configured
// undefined fills survive equality and serialisation round-trips.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}

// FillMethod selects the NaN replacement strategy of FillNaN.
type FillMethod int

const (
	// FillInterpolation re-derives missing values from the finite neighbours
	// by linear re-interpolation (edge-clamped).
	FillInterpolation FillMethod = iota

	// FillConstant replaces missing values with a fixed constant.
	FillConstant
)

// Operator is an elementwise arithmetical operation over range values.
type Operator int

const (
	// OpAdd is elementwise addition.
	OpAdd Operator = iota
	// OpSub is elementwise subtraction.
	OpSub
	// OpMul is elementwise multiplication.
	OpMul
	// OpDiv is elementwise division (IEEE-754: x/0 yields ±Inf).
	OpDiv
	// OpPow is elementwise exponentiation.
	OpPow
)

// String returns the operator glyph.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	default:
		return "?"
	}
}

// apply evaluates a op b.
func (op Operator) apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}
}

// Channel is the capability set a single-channel signal must expose to be
// owned by a MultiSignals container. *Signal is the default implementation;
// any capability-compatible type may be substituted via WithSignalFactory.
type Channel interface {
	// Len returns the number of domain samples.
	Len() int

	// Domain returns a copy of the ordered domain samples.
	Domain() []float64

	// Range returns a copy of the range values, one per domain sample.
	Range() []float64

	// SetDomain replaces the domain in place; the new domain must match the
	// current length. Non-finite entries raise a runtime warning, not an
	// error.
	SetDomain(domain []float64) error

	// SetRange replaces the range in place; length must match the domain.
	SetRange(values []float64) error

	// Reset atomically replaces domain and range together (lengths equal).
	Reset(domain, values []float64) error

	// Evaluate interpolates/extrapolates the signal at the query points.
	Evaluate(queries []float64) ([]float64, error)

	// Assign sets values at the given domain points, inserting points absent
	// from the domain and re-sorting.
	Assign(points, values []float64) error

	// IsUniform reports whether the domain has constant spacing.
	IsUniform() bool

	// FillNaN replaces NaN range entries using the given strategy.
	FillNaN(method FillMethod, constant float64) error

	// DomainDistances returns, per query, the distance to the nearest
	// existing domain sample.
	DomainDistances(queries []float64) []float64

	// InterpolatorConfig returns the interpolation configuration.
	InterpolatorConfig() InterpolatorConfig

	// SetInterpolatorConfig replaces the interpolation configuration.
	SetInterpolatorConfig(cfg InterpolatorConfig) error

	// ExtrapolatorConfig returns the extrapolation configuration.
	ExtrapolatorConfig() ExtrapolatorConfig

	// SetExtrapolatorConfig replaces the extrapolation configuration.
	SetExtrapolatorConfig(cfg ExtrapolatorConfig) error

	// Equal compares domain, range and both configurations elementwise
	// (NaN compares equal to NaN).
	Equal(other Channel) bool

	// Copy returns a deep, independent copy.
	Copy() Channel
}

// SignalFactory builds a Channel from aligned domain/range arrays and the
// resolved container options. It is the polymorphic channel constructor a
// container uses for every channel it owns.
type SignalFactory func(domain, values []float64, o Options) (Channel, error)

// Tabular is the labelled tabular structure the container can export to and
// construct from. The table package provides the concrete implementation;
// the core depends only on this interface.
type Tabular interface {
	// Index returns the domain column.
	Index() []float64

	// Labels returns the ordered column labels.
	Labels() []string

	// Column returns the column for the label, or nil when absent.
	Column(label string) []float64
}

// TabularBuilder assembles a Tabular from aligned export data.
type TabularBuilder func(index []float64, labels []string, columns [][]float64) Tabular

var (
	tabularMu      sync.RWMutex
	tabularBuilder TabularBuilder
)

// RegisterTabularBuilder installs the tabular capability. The table package
// registers itself on import; callers only needing the core may skip it, in
// which case ToTabular reports ErrTabularUnsupported.
func RegisterTabularBuilder(b TabularBuilder) {
	tabularMu.Lock()
	defer tabularMu.Unlock()
	tabularBuilder = b
}

func buildTabular(index []float64, labels []string, columns [][]float64) (Tabular, error) {
	tabularMu.RLock()
	defer tabularMu.RUnlock()
	if tabularBuilder == nil {
		return nil, ErrTabularUnsupported
	}

	return tabularBuilder(index, labels, columns), nil
}

// InterpolatorFactory fits an algebra.Interpolator over (x, y) under the
// given configuration.
type InterpolatorFactory func(x, y []float64, cfg InterpolatorConfig) (algebra.Interpolator, error)

var (
	interpolatorsMu sync.RWMutex
	interpolators   = map[string]InterpolatorFactory{
		InterpolatorKernel: func(x, y []float64, cfg InterpolatorConfig) (algebra.Interpolator, error) {
			ki, err := algebra.NewKernelInterpolator(x, y, cfg.Window, algebra.LanczosKernel(cfg.Scale))
			if err != nil {
				return nil, err
			}

			return ki, nil
		},
		InterpolatorLinear: func(x, y []float64, _ InterpolatorConfig) (algebra.Interpolator, error) {
			li, err := algebra.NewLinearInterpolator(x, y)
			if err != nil {
				return nil, err
			}

			return li, nil
		},
		InterpolatorCubicSpline: func(x, y []float64, _ InterpolatorConfig) (algebra.Interpolator, error) {
			cs, err := algebra.NewCubicSplineInterpolator(x, y)
			if err != nil {
				return nil, err
			}

			return cs, nil
		},
	}
)

// RegisterInterpolator installs (or replaces) an interpolator factory under
// the given method name, making it usable in InterpolatorConfig and in
// deserialised containers.
func RegisterInterpolator(name string, f InterpolatorFactory) {
	interpolatorsMu.Lock()
	defer interpolatorsMu.Unlock()
	interpolators[name] = f
}

func lookupInterpolator(name string) (InterpolatorFactory, error) {
	interpolatorsMu.RLock()
	defer interpolatorsMu.RUnlock()
	f, ok := interpolators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInterpolator, name)
	}

	return f, nil
}

// warnHandler receives recoverable runtime warnings (e.g. non-finite values
// written into a live domain). Default: stdlib log.
var (
	warnMu      sync.RWMutex
	warnHandler = func(msg string) { log.Print(msg) }
)

// SetWarningHandler replaces the recoverable-warning sink. A nil handler
// silences warnings.
func SetWarningHandler(h func(msg string)) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if h == nil {
		h = func(string) {}
	}
	warnHandler = h
}

func warnf(format string, args ...any) {
	warnMu.RLock()
	h := warnHandler
	warnMu.RUnlock()
	h(fmt.Sprintf(format, args...))
}

// Options stores the effective configuration after applying Option setters.
type Options struct {
	domain  []float64
	labels  []string
	interp  InterpolatorConfig
	extrap  ExtrapolatorConfig
	factory SignalFactory
}

// Interpolator returns the resolved interpolation configuration.
func (o Options) Interpolator() InterpolatorConfig { return o.interp }

// Extrapolator returns the resolved extrapolation configuration.
func (o Options) Extrapolator() ExtrapolatorConfig { return o.extrap }

// Option mutates construction Options; setters are last-writer-wins.
type Option func(*Options)

// WithDomain supplies an explicit domain for inputs that default to the
// 0..N-1 integer index domain.
func WithDomain(domain []float64) Option {
	return func(o *Options) { o.domain = append([]float64(nil), domain...) }
}

// WithLabels supplies explicit channel labels. Cardinality must match the
// channel count; duplicate labels are disambiguated with " - <index>".
func WithLabels(labels ...string) Option {
	return func(o *Options) { o.labels = append([]string(nil), labels...) }
}

// WithInterpolator selects the interpolation method by registered name.
func WithInterpolator(method string) Option {
	return func(o *Options) { o.interp.Method = method }
}

// WithInterpolatorConfig replaces the full interpolation configuration.
func WithInterpolatorConfig(cfg InterpolatorConfig) Option {
	return func(o *Options) { o.interp = cfg }
}

// WithExtrapolator selects the extrapolation method.
func WithExtrapolator(method string) Option {
	return func(o *Options) { o.extrap.Method = method }
}

// WithExtrapolatorConfig replaces the full extrapolation configuration.
func WithExtrapolatorConfig(cfg ExtrapolatorConfig) Option {
	return func(o *Options) { o.extrap = cfg }
}

// WithSignalFactory substitutes the channel constructor; the container then
// owns whatever Channel implementation the factory yields.
func WithSignalFactory(f SignalFactory) Option {
	return func(o *Options) { o.factory = f }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		interp: InterpolatorConfig{}.normalised(),
		extrap: NewExtrapolatorConfig(),
	}
	for _, set := range opts {
		set(&o)
	}
	o.interp = o.interp.normalised()
	o.extrap = o.extrap.normalised()
	if o.factory == nil {
		o.factory = defaultSignalFactory
	}

	return o
}

// defaultSignalFactory builds the package's own *Signal channels.
func defaultSignalFactory(domain, values []float64, o Options) (Channel, error) {
	return NewSignal(values, domain,
		WithInterpolatorConfig(o.interp),
		WithExtrapolatorConfig(o.extrap),
	)
}
