package continuous

import (
	"fmt"
	"sort"
	"strconv"
)

// inputKind discriminates the Input tagged union.
type inputKind int

const (
	kindNone inputKind = iota
	kindSeries
	kindColumns
	kindMapping
	kindChannels
	kindTabular
	kindContainer
)

// Input is the tagged union of data shapes the container constructor
// accepts. Construct it with one of the From* helpers (or NoData); the zero
// Input is equivalent to NoData().
type Input struct {
	kind      inputKind
	series    []float64
	columns   [][]float64
	mapping   map[float64][]float64
	channels  []Channel
	tabular   Tabular
	container *MultiSignals
}

// NoData yields an empty container.
func NoData() Input { return Input{kind: kindNone} }

// FromSeries yields a single-channel container over one range series; the
// domain defaults to the 0..N-1 integer index unless WithDomain overrides it.
func FromSeries(values []float64) Input {
	return Input{kind: kindSeries, series: append([]float64(nil), values...)}
}

// FromColumns yields one channel per column; all columns must share a
// length, which must match the (explicit or default) domain.
func FromColumns(columns [][]float64) Input {
	cp := make([][]float64, len(columns))
	for i, col := range columns {
		cp[i] = append([]float64(nil), col...)
	}

	return Input{kind: kindColumns, columns: cp}
}

// FromMap yields channels from a domain-point → row mapping; keys are
// sorted ascending and every row must share a width.
func FromMap(m map[float64][]float64) Input {
	cp := make(map[float64][]float64, len(m))
	for k, row := range m {
		cp[k] = append([]float64(nil), row...)
	}

	return Input{kind: kindMapping, mapping: cp}
}

// FromChannels adopts pre-built channels, re-rendering them onto a shared
// domain when their domains disagree.
func FromChannels(channels ...Channel) Input {
	return Input{kind: kindChannels, channels: append([]Channel(nil), channels...)}
}

// FromTabular yields channels from a labelled table: the index becomes the
// domain and each column becomes a channel carrying its label.
func FromTabular(t Tabular) Input { return Input{kind: kindTabular, tabular: t} }

// FromContainer deep-copies an existing container's channels and labels.
func FromContainer(ms *MultiSignals) Input {
	return Input{kind: kindContainer, container: ms}
}

// unpacked is the normalised construction payload: either pre-built
// channels carried whole (keeping their own configuration), or aligned
// per-channel domain/range pairs for the raw-array shapes, plus labels.
type unpacked struct {
	channels []Channel
	domains  [][]float64
	ranges   [][]float64
	labels   []string
}

// unpack normalises the union into per-channel samples. The default domain
// for index-less shapes is the integer sequence 0..N-1; default labels are
// the channel indices as strings.
func (in Input) unpack(o Options) (unpacked, error) {
	switch in.kind {
	case kindNone:
		return unpacked{}, nil

	case kindSeries:
		domain, err := resolveDomain(o.domain, len(in.series))
		if err != nil {
			return unpacked{}, err
		}

		return unpacked{
			domains: [][]float64{domain},
			ranges:  [][]float64{append([]float64(nil), in.series...)},
		}, nil

	case kindColumns:
		return unpackColumns(in.columns, o)

	case kindMapping:
		return unpackMapping(in.mapping)

	case kindChannels:
		return unpackChannels(in.channels)

	case kindTabular:
		return unpackTabular(in.tabular)

	case kindContainer:
		if in.container == nil {
			return unpacked{}, nil
		}
		u, err := unpackChannels(in.container.channels)
		if err != nil {
			return unpacked{}, err
		}
		u.labels = append([]string(nil), in.container.labels...)

		return u, nil

	default:
		return unpacked{}, fmt.Errorf("%w: kind %d", ErrUnsupportedInput, int(in.kind))
	}
}

func unpackColumns(columns [][]float64, o Options) (unpacked, error) {
	if len(columns) == 0 {
		return unpacked{}, nil
	}
	n := len(columns[0])
	for _, col := range columns {
		if len(col) != n {
			return unpacked{}, fmt.Errorf("%w: ragged columns", ErrDomainRangeLength)
		}
	}
	domain, err := resolveDomain(o.domain, n)
	if err != nil {
		return unpacked{}, err
	}

	u := unpacked{}
	for _, col := range columns {
		u.domains = append(u.domains, append([]float64(nil), domain...))
		u.ranges = append(u.ranges, append([]float64(nil), col...))
	}

	return u, nil
}

func unpackMapping(m map[float64][]float64) (unpacked, error) {
	if len(m) == 0 {
		return unpacked{}, nil
	}
	keys := make([]float64, 0, len(m))
	width := -1
	for k, row := range m {
		keys = append(keys, k)
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return unpacked{}, fmt.Errorf("%w: ragged mapping rows", ErrDomainRangeLength)
		}
	}
	sort.Float64s(keys)

	u := unpacked{}
	for c := 0; c < width; c++ {
		domain := append([]float64(nil), keys...)
		values := make([]float64, len(keys))
		for i, k := range keys {
			values[i] = m[k][c]
		}
		u.domains = append(u.domains, domain)
		u.ranges = append(u.ranges, values)
	}

	return u, nil
}

// unpackChannels deep-copies the supplied channels, carrying each one's own
// interpolator/extrapolator configuration into the container.
func unpackChannels(channels []Channel) (unpacked, error) {
	u := unpacked{}
	for _, ch := range channels {
		if ch == nil {
			return unpacked{}, fmt.Errorf("%w: nil channel", ErrUnsupportedInput)
		}
		u.channels = append(u.channels, ch.Copy())
	}

	return u, nil
}

func unpackTabular(t Tabular) (unpacked, error) {
	if t == nil {
		return unpacked{}, nil
	}
	index := t.Index()
	u := unpacked{labels: append([]string(nil), t.Labels()...)}
	for _, label := range u.labels {
		col := t.Column(label)
		if len(col) != len(index) {
			return unpacked{}, fmt.Errorf("%w: column %q", ErrDomainRangeLength, label)
		}
		u.domains = append(u.domains, append([]float64(nil), index...))
		u.ranges = append(u.ranges, append([]float64(nil), col...))
	}

	return u, nil
}

// resolveDomain validates an explicit domain against the range length, or
// generates the default 0..n-1 index domain.
func resolveDomain(domain []float64, n int) ([]float64, error) {
	if domain == nil {
		d := make([]float64, n)
		for i := range d {
			d[i] = float64(i)
		}

		return d, nil
	}
	if len(domain) != n {
		return nil, fmt.Errorf("%w: domain %d vs range %d", ErrDomainRangeLength, len(domain), n)
	}

	return append([]float64(nil), domain...), nil
}

// disambiguateLabels applies the duplicate-label policy: when any label
// repeats, every label receives a " - <index>" suffix carrying its position.
func disambiguateLabels(labels []string) []string {
	seen := make(map[string]int, len(labels))
	dup := false
	for _, l := range labels {
		seen[l]++
		if seen[l] > 1 {
			dup = true
		}
	}
	if !dup {
		return labels
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l + " - " + strconv.Itoa(i)
	}

	return out
}

// defaultLabels are the channel indices rendered as strings.
func defaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}
