package continuous

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spectra/algebra"
)

// MultiSignals is a labelled multi-channel continuous function. All channels
// share one domain; the range is the N×C matrix of channel values at the
// domain samples. Evaluation fans a query out to every channel and gathers
// the per-channel results into rows.
//
// Mutations that grow the domain are transactional across channels: either
// every channel adopts the grown domain or none does.
type MultiSignals struct {
	channels []Channel
	labels   []string
	options  Options
}

// Operand is the right-hand side of an arithmetical operation. Construct it
// with Scalar, PerChannel, Table or Container.
type Operand struct {
	kind      inputKind
	scalar    float64
	perChan   []float64
	rows      [][]float64
	container *MultiSignals
}

// Scalar broadcasts one value to every cell of the range.
func Scalar(v float64) Operand { return Operand{kind: kindSeries, scalar: v} }

// PerChannel broadcasts one value per channel down its column.
func PerChannel(values ...float64) Operand {
	return Operand{kind: kindColumns, perChan: append([]float64(nil), values...)}
}

// Table supplies a full N×C matrix of per-cell operands.
func Table(rows [][]float64) Operand {
	cp := make([][]float64, len(rows))
	for i, r := range rows {
		cp[i] = append([]float64(nil), r...)
	}

	return Operand{kind: kindTabular, rows: cp}
}

// Container evaluates another container at the receiver's domain and uses
// the resulting rows as per-cell operands.
func Container(ms *MultiSignals) Operand {
	return Operand{kind: kindContainer, container: ms}
}

// NewMultiSignals builds a container from the given input shape. Pre-built
// channels (FromChannels, FromContainer) are adopted as deep copies and keep
// their own interpolator/extrapolator configurations; raw-array shapes are
// built through the signal factory with the container options. Channels with
// disagreeing domains are re-rendered onto the union domain through their
// own configurations. Label precedence: WithLabels, then labels carried by
// the input, then channel indices; duplicate labels are suffixed with
// " - <index>".
func NewMultiSignals(in Input, opts ...Option) (*MultiSignals, error) {
	o := gatherOptions(opts...)
	u, err := in.unpack(o)
	if err != nil {
		return nil, err
	}

	ms := &MultiSignals{options: o, channels: u.channels}
	for i := range u.domains {
		ch, err := o.factory(u.domains[i], u.ranges[i], o)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		ms.channels = append(ms.channels, ch)
	}
	if err := ms.alignDomains(); err != nil {
		return nil, err
	}

	labels := o.labels
	if labels == nil {
		labels = u.labels
	}
	if labels == nil {
		labels = defaultLabels(len(ms.channels))
	}
	if err := ms.SetLabels(labels); err != nil {
		return nil, err
	}

	return ms, nil
}

// alignDomains re-renders every channel onto the union domain when the
// channel domains disagree.
func (ms *MultiSignals) alignDomains() error {
	if len(ms.channels) < 2 {
		return nil
	}
	ref := ms.channels[0].Domain()
	shared := true
	for _, ch := range ms.channels[1:] {
		d := ch.Domain()
		if len(d) != len(ref) {
			shared = false

			break
		}
		for i := range d {
			if d[i] != ref[i] {
				shared = false

				break
			}
		}
		if !shared {
			break
		}
	}
	if shared {
		return nil
	}

	union := unionDomain(ms.channelDomains())
	rendered := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		values, err := ch.Evaluate(union)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		rendered[i] = values
	}
	for i, ch := range ms.channels {
		if err := ch.Reset(union, rendered[i]); err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
	}

	return nil
}

func (ms *MultiSignals) channelDomains() [][]float64 {
	out := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		out[i] = ch.Domain()
	}

	return out
}

// unionDomain merges sorted domains into one ascending deduplicated domain.
func unionDomain(domains [][]float64) []float64 {
	set := make(map[float64]struct{})
	for _, d := range domains {
		for _, x := range d {
			set[x] = struct{}{}
		}
	}
	out := make([]float64, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Float64s(out)

	return out
}

// Len returns the number of domain samples.
func (ms *MultiSignals) Len() int {
	if len(ms.channels) == 0 {
		return 0
	}

	return ms.channels[0].Len()
}

// ChannelCount returns the number of channels.
func (ms *MultiSignals) ChannelCount() int { return len(ms.channels) }

// Labels returns a copy of the channel labels in channel order.
func (ms *MultiSignals) Labels() []string { return append([]string(nil), ms.labels...) }

// SetLabels replaces the channel labels. Cardinality must match the channel
// count; duplicates are disambiguated by suffixing every label with its
// channel index.
func (ms *MultiSignals) SetLabels(labels []string) error {
	if len(labels) != len(ms.channels) {
		return fmt.Errorf("%w: %d labels for %d channels", ErrLabelCardinality, len(labels), len(ms.channels))
	}
	ms.labels = disambiguateLabels(append([]string(nil), labels...))

	return nil
}

// Signals returns the owned channels in channel order. The slice is a copy;
// the channels themselves are live.
func (ms *MultiSignals) Signals() []Channel { return append([]Channel(nil), ms.channels...) }

// Signal returns the channel carrying the label, or nil when absent.
func (ms *MultiSignals) Signal(label string) Channel {
	for i, l := range ms.labels {
		if l == label {
			return ms.channels[i]
		}
	}

	return nil
}

// Domain returns a copy of the shared domain.
func (ms *MultiSignals) Domain() []float64 {
	if len(ms.channels) == 0 {
		return nil
	}

	return ms.channels[0].Domain()
}

// Range returns the range matrix as rows: one row per domain sample, one
// column per channel.
func (ms *MultiSignals) Range() [][]float64 {
	cols := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		cols[i] = ch.Range()
	}

	return algebra.Tstack(cols)
}

// Rows returns the positional row slice [lo, hi).
func (ms *MultiSignals) Rows(lo, hi int) ([][]float64, error) {
	n := ms.Len()
	if lo < 0 || hi > n || lo > hi {
		return nil, fmt.Errorf("%w: [%d, %d) of %d rows", ErrIndexRange, lo, hi, n)
	}

	return ms.Range()[lo:hi], nil
}

// Evaluate reconstructs every channel at the query points and returns the
// results as rows (one per query, one column per channel).
func (ms *MultiSignals) Evaluate(queries []float64) ([][]float64, error) {
	if len(ms.channels) == 0 {
		return nil, ErrEmptyContainer
	}
	cols := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		out, err := ch.Evaluate(queries)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
		cols[i] = out
	}

	return algebra.Tstack(cols), nil
}

// At evaluates every channel at a single query point and returns the row.
func (ms *MultiSignals) At(query float64) ([]float64, error) {
	rows, err := ms.Evaluate([]float64{query})
	if err != nil {
		return nil, err
	}

	return rows[0], nil
}

// SetAt writes one row of channel values at the domain point, growing the
// shared domain when the point is new.
func (ms *MultiSignals) SetAt(point float64, row []float64) error {
	return ms.SetPoints([]float64{point}, [][]float64{row})
}

// SetPoints writes rows of channel values at the given domain points.
// Points absent from the domain are inserted; the growth is transactional:
// every channel is validated and staged before any channel commits, so a
// failure leaves the container untouched.
func (ms *MultiSignals) SetPoints(points []float64, rows [][]float64) error {
	if len(ms.channels) == 0 {
		return ErrEmptyContainer
	}
	if len(points) != len(rows) {
		return fmt.Errorf("%w: %d points vs %d rows", ErrDomainRangeLength, len(points), len(rows))
	}
	for _, x := range points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %v", ErrNonFiniteDomain, x)
		}
	}
	for i, row := range rows {
		if len(row) != len(ms.channels) {
			return fmt.Errorf("%w: row %d width %d vs %d channels", ErrOperandShape, i, len(row), len(ms.channels))
		}
	}

	// Stage every channel's grown samples before committing any of them.
	staged := make([]struct{ d, v []float64 }, len(ms.channels))
	for c, ch := range ms.channels {
		d := ch.Domain()
		v := ch.Range()
		index := make(map[float64]int, len(d))
		for i, x := range d {
			index[x] = i
		}
		for i, x := range points {
			if j, ok := index[x]; ok {
				v[j] = rows[i][c]

				continue
			}
			index[x] = len(d)
			d = append(d, x)
			v = append(v, rows[i][c])
		}
		staged[c].d, staged[c].v = d, v
	}
	for c, ch := range ms.channels {
		if err := ch.Reset(staged[c].d, staged[c].v); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[c], err)
		}
	}

	return nil
}

// SetRowAt overwrites the row at the positional index.
func (ms *MultiSignals) SetRowAt(i int, row []float64) error {
	return ms.SetRowsAt(i, i+1, [][]float64{row})
}

// SetRowsAt overwrites the positional row slice [lo, hi).
func (ms *MultiSignals) SetRowsAt(lo, hi int, rows [][]float64) error {
	n := ms.Len()
	if lo < 0 || hi > n || lo > hi {
		return fmt.Errorf("%w: [%d, %d) of %d rows", ErrIndexRange, lo, hi, n)
	}
	if len(rows) != hi-lo {
		return fmt.Errorf("%w: %d rows for span of %d", ErrDomainRangeLength, len(rows), hi-lo)
	}
	for i, row := range rows {
		if len(row) != len(ms.channels) {
			return fmt.Errorf("%w: row %d width %d vs %d channels", ErrOperandShape, i, len(row), len(ms.channels))
		}
	}
	for c, ch := range ms.channels {
		v := ch.Range()
		for i := lo; i < hi; i++ {
			v[i] = rows[i-lo][c]
		}
		if err := ch.SetRange(v); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[c], err)
		}
	}

	return nil
}

// SetSpan writes the value into every cell whose domain sample lies in the
// closed interval [lo, hi].
func (ms *MultiSignals) SetSpan(lo, hi, value float64) error {
	if len(ms.channels) == 0 {
		return ErrEmptyContainer
	}
	domain := ms.Domain()
	for _, ch := range ms.channels {
		v := ch.Range()
		for i, x := range domain {
			if x >= lo && x <= hi {
				v[i] = value
			}
		}
		if err := ch.SetRange(v); err != nil {
			return err
		}
	}

	return nil
}

// SetColumnSpan writes the value into the labelled channel's cells whose
// domain sample lies in [lo, hi].
func (ms *MultiSignals) SetColumnSpan(label string, lo, hi, value float64) error {
	ch := ms.Signal(label)
	if ch == nil {
		return fmt.Errorf("%w: no channel %q", ErrLabelCardinality, label)
	}
	domain := ch.Domain()
	v := ch.Range()
	for i, x := range domain {
		if x >= lo && x <= hi {
			v[i] = value
		}
	}

	return ch.SetRange(v)
}

// SetDomain replaces the shared domain across every channel. Channel
// semantics apply: a non-finite domain is reported through the warning
// handler and skipped instead of failing.
func (ms *MultiSignals) SetDomain(domain []float64) error {
	for i, ch := range ms.channels {
		if err := ch.SetDomain(domain); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
	}

	return nil
}

// SetRange replaces the labelled channel's range values.
func (ms *MultiSignals) SetRange(label string, values []float64) error {
	ch := ms.Signal(label)
	if ch == nil {
		return fmt.Errorf("%w: no channel %q", ErrLabelCardinality, label)
	}

	return ch.SetRange(values)
}

// SetRangeAll replaces the full range matrix from rows.
func (ms *MultiSignals) SetRangeAll(rows [][]float64) error {
	if len(rows) != ms.Len() {
		return fmt.Errorf("%w: %d rows for %d samples", ErrDomainRangeLength, len(rows), ms.Len())
	}
	cols := algebra.Tsplit(rows)
	if len(cols) != len(ms.channels) {
		return fmt.Errorf("%w: %d columns for %d channels", ErrOperandShape, len(cols), len(ms.channels))
	}
	for i, ch := range ms.channels {
		if err := ch.SetRange(cols[i]); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
	}

	return nil
}

// operandRows resolves the operand to an N×C matrix aligned with the range.
func (ms *MultiSignals) operandRows(operand Operand) ([][]float64, error) {
	n, c := ms.Len(), len(ms.channels)
	switch operand.kind {
	case kindSeries:
		rows := make([][]float64, n)
		for i := range rows {
			row := make([]float64, c)
			for j := range row {
				row[j] = operand.scalar
			}
			rows[i] = row
		}

		return rows, nil

	case kindColumns:
		if len(operand.perChan) != c {
			return nil, fmt.Errorf("%w: %d per-channel operands for %d channels", ErrOperandShape, len(operand.perChan), c)
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = append([]float64(nil), operand.perChan...)
		}

		return rows, nil

	case kindTabular:
		if len(operand.rows) != n {
			return nil, fmt.Errorf("%w: %d operand rows for %d samples", ErrOperandShape, len(operand.rows), n)
		}
		for i, row := range operand.rows {
			if len(row) != c {
				return nil, fmt.Errorf("%w: operand row %d width %d vs %d channels", ErrOperandShape, i, len(row), c)
			}
		}

		return operand.rows, nil

	case kindContainer:
		if operand.container == nil || operand.container.ChannelCount() != c {
			return nil, fmt.Errorf("%w: container operand channel mismatch", ErrOperandShape)
		}

		return operand.container.Evaluate(ms.Domain())

	default:
		return nil, fmt.Errorf("%w: operand kind %d", ErrUnsupportedInput, int(operand.kind))
	}
}

// ArithmeticalOperation applies the operator elementwise between the range
// and the operand. With inPlace the receiver is mutated and returned;
// otherwise a deep copy carries the result and the receiver is untouched.
func (ms *MultiSignals) ArithmeticalOperation(operand Operand, op Operator, inPlace bool) (*MultiSignals, error) {
	rhs, err := ms.operandRows(operand)
	if err != nil {
		return nil, err
	}
	target := ms
	if !inPlace {
		target = ms.Copy()
	}
	rows := target.Range()
	for i := range rows {
		for j := range rows[i] {
			rows[i][j], err = op.apply(rows[i][j], rhs[i][j])
			if err != nil {
				return nil, err
			}
		}
	}
	if err := target.SetRangeAll(rows); err != nil {
		return nil, err
	}

	return target, nil
}

// Add returns a copy with the operand added elementwise.
func (ms *MultiSignals) Add(operand Operand) (*MultiSignals, error) {
	return ms.ArithmeticalOperation(operand, OpAdd, false)
}

// Sub returns a copy with the operand subtracted elementwise.
func (ms *MultiSignals) Sub(operand Operand) (*MultiSignals, error) {
	return ms.ArithmeticalOperation(operand, OpSub, false)
}

// Mul returns a copy with the operand multiplied elementwise.
func (ms *MultiSignals) Mul(operand Operand) (*MultiSignals, error) {
	return ms.ArithmeticalOperation(operand, OpMul, false)
}

// Div returns a copy with the operand divided elementwise.
func (ms *MultiSignals) Div(operand Operand) (*MultiSignals, error) {
	return ms.ArithmeticalOperation(operand, OpDiv, false)
}

// Pow returns a copy with the range raised to the operand elementwise.
func (ms *MultiSignals) Pow(operand Operand) (*MultiSignals, error) {
	return ms.ArithmeticalOperation(operand, OpPow, false)
}

// FillNaN replaces NaN range entries in every channel.
func (ms *MultiSignals) FillNaN(method FillMethod, constant float64) error {
	for i, ch := range ms.channels {
		if err := ch.FillNaN(method, constant); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
	}

	return nil
}

// DomainDistance returns, per query, the absolute distance to the nearest
// shared-domain sample.
func (ms *MultiSignals) DomainDistance(queries []float64) []float64 {
	if len(ms.channels) == 0 {
		out := make([]float64, len(queries))
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}

	return ms.channels[0].DomainDistances(queries)
}

// IsUniform reports whether the shared domain has constant spacing.
func (ms *MultiSignals) IsUniform() bool {
	if len(ms.channels) == 0 {
		return false
	}

	return ms.channels[0].IsUniform()
}

// Contains reports whether the query lies inside the domain span.
func (ms *MultiSignals) Contains(query float64) bool {
	d := ms.Domain()
	if len(d) == 0 {
		return false
	}

	return query >= d[0] && query <= d[len(d)-1]
}

// Each visits every channel with its label, in channel order.
func (ms *MultiSignals) Each(fn func(label string, ch Channel)) {
	for i, ch := range ms.channels {
		fn(ms.labels[i], ch)
	}
}

// EachRow visits every domain sample with its range row, in ascending
// domain order. The row slices are copies; the traversal is finite and can
// be restarted.
func (ms *MultiSignals) EachRow(fn func(x float64, row []float64)) {
	domain := ms.Domain()
	rows := ms.Range()
	for i, x := range domain {
		fn(x, rows[i])
	}
}

// Equal reports deep equality of labels and channels (NaN range values
// compare equal to NaN).
func (ms *MultiSignals) Equal(other *MultiSignals) bool {
	if other == nil || len(ms.channels) != len(other.channels) {
		return false
	}
	for i := range ms.labels {
		if ms.labels[i] != other.labels[i] {
			return false
		}
	}
	for i := range ms.channels {
		if !ms.channels[i].Equal(other.channels[i]) {
			return false
		}
	}

	return true
}

// Copy returns a deep, independent copy of channels and labels.
func (ms *MultiSignals) Copy() *MultiSignals {
	cp := &MultiSignals{
		labels:  append([]string(nil), ms.labels...),
		options: ms.options,
	}
	for _, ch := range ms.channels {
		cp.channels = append(cp.channels, ch.Copy())
	}

	return cp
}

// ToTabular exports the container as a labelled table (domain index plus
// one column per channel). The capability is provided by the table package;
// without it the call reports ErrTabularUnsupported.
func (ms *MultiSignals) ToTabular() (Tabular, error) {
	cols := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		cols[i] = ch.Range()
	}

	return buildTabular(ms.Domain(), ms.Labels(), cols)
}

// SetInterpolatorConfig fans the interpolation configuration out to every
// channel.
func (ms *MultiSignals) SetInterpolatorConfig(cfg InterpolatorConfig) error {
	for i, ch := range ms.channels {
		if err := ch.SetInterpolatorConfig(cfg); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
	}

	return nil
}

// SetExtrapolatorConfig fans the extrapolation configuration out to every
// channel.
func (ms *MultiSignals) SetExtrapolatorConfig(cfg ExtrapolatorConfig) error {
	for i, ch := range ms.channels {
		if err := ch.SetExtrapolatorConfig(cfg); err != nil {
			return fmt.Errorf("channel %q: %w", ms.labels[i], err)
		}
	}

	return nil
}
