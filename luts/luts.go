package luts

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spectra/algebra"
)

// Sentinel errors for LUT construction.
var (
	// ErrBadSize indicates a table size outside the format's limits.
	ErrBadSize = errors.New("luts: table size out of range")

	// ErrBadDomain indicates a degenerate input domain (min >= max).
	ErrBadDomain = errors.New("luts: domain minimum must be below maximum")

	// ErrBadTable indicates a table whose length disagrees with the size.
	ErrBadTable = errors.New("luts: table length does not match size")
)

// Shaper sizes and cube sizes the Cinespace format accepts.
const (
	minShaperSize = 2
	maxShaperSize = 65536
	minCubeSize   = 2
	maxCubeSize   = 256
)

// LUT1D is a sampled scalar curve over a [Min, Max] input domain,
// reconstructed linearly between samples and clamped outside the domain.
type LUT1D struct {
	Name     string
	Comments []string

	domain [2]float64
	table  []float64
}

// NewLUT1D builds a curve from its samples, spread uniformly over the
// domain.
func NewLUT1D(name string, domain [2]float64, table []float64) (*LUT1D, error) {
	if len(table) < minShaperSize || len(table) > maxShaperSize {
		return nil, fmt.Errorf("%w: %d samples", ErrBadSize, len(table))
	}
	if domain[0] >= domain[1] {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrBadDomain, domain[0], domain[1])
	}

	return &LUT1D{
		Name:   name,
		domain: domain,
		table:  append([]float64(nil), table...),
	}, nil
}

// Size returns the number of samples.
func (l *LUT1D) Size() int { return len(l.table) }

// Domain returns the input domain bounds.
func (l *LUT1D) Domain() [2]float64 { return l.domain }

// Table returns a copy of the samples.
func (l *LUT1D) Table() []float64 { return append([]float64(nil), l.table...) }

// Apply maps the value through the curve, clamping outside the domain.
func (l *LUT1D) Apply(v float64) float64 {
	x := algebra.Linspace(l.domain[0], l.domain[1], len(l.table))

	return algebra.Lerp([]float64{v}, x, l.table)[0]
}

// LUT3D is an RGB cube of side Size over per-channel [Min, Max] domains,
// reconstructed trilinearly. Entries are stored red-fastest: the entry for
// grid indices (r, g, b) lives at r + size*g + size*size*b.
type LUT3D struct {
	Name     string
	Comments []string

	domain [2][3]float64
	size   int
	table  [][3]float64
}

// NewLUT3D builds a cube from its flat red-fastest entries; the table must
// hold size³ rows.
func NewLUT3D(name string, domain [2][3]float64, size int, table [][3]float64) (*LUT3D, error) {
	if size < minCubeSize || size > maxCubeSize {
		return nil, fmt.Errorf("%w: cube side %d", ErrBadSize, size)
	}
	for i := 0; i < 3; i++ {
		if domain[0][i] >= domain[1][i] {
			return nil, fmt.Errorf("%w: channel %d [%v, %v]", ErrBadDomain, i, domain[0][i], domain[1][i])
		}
	}
	if len(table) != size*size*size {
		return nil, fmt.Errorf("%w: %d rows for side %d", ErrBadTable, len(table), size)
	}
	cp := make([][3]float64, len(table))
	copy(cp, table)

	return &LUT3D{
		Name:   name,
		domain: domain,
		size:   size,
		table:  cp,
	}, nil
}

// IdentityLUT3D builds the identity cube of the given side over [0, 1]³.
func IdentityLUT3D(name string, size int) (*LUT3D, error) {
	table := make([][3]float64, 0, size*size*size)
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				table = append(table, [3]float64{
					float64(r) / float64(size-1),
					float64(g) / float64(size-1),
					float64(b) / float64(size-1),
				})
			}
		}
	}

	return NewLUT3D(name, [2][3]float64{{0, 0, 0}, {1, 1, 1}}, size, table)
}

// Size returns the cube side.
func (l *LUT3D) Size() int { return l.size }

// Domain returns the per-channel input domain bounds.
func (l *LUT3D) Domain() [2][3]float64 { return l.domain }

// Table returns a copy of the flat red-fastest entries.
func (l *LUT3D) Table() [][3]float64 {
	cp := make([][3]float64, len(l.table))
	copy(cp, l.table)

	return cp
}

func (l *LUT3D) at(r, g, b int) [3]float64 {
	return l.table[r+l.size*g+l.size*l.size*b]
}

// Apply maps the RGB triplet through the cube trilinearly, clamping each
// channel to its domain.
func (l *LUT3D) Apply(rgb [3]float64) [3]float64 {
	n := float64(l.size - 1)
	var idx [3]int
	var frac [3]float64
	for i := 0; i < 3; i++ {
		lo, hi := l.domain[0][i], l.domain[1][i]
		t := (math.Min(math.Max(rgb[i], lo), hi) - lo) / (hi - lo) * n
		j := int(math.Floor(t))
		if j >= l.size-1 {
			j = l.size - 2
		}
		idx[i] = j
		frac[i] = t - float64(j)
	}

	var out [3]float64
	for c := 0; c < 3; c++ {
		// interpolate along r, then g, then b
		interp := func(b int) float64 {
			g00 := l.at(idx[0], idx[1], b)[c]
			g10 := l.at(idx[0]+1, idx[1], b)[c]
			g01 := l.at(idx[0], idx[1]+1, b)[c]
			g11 := l.at(idx[0]+1, idx[1]+1, b)[c]
			lo := g00 + frac[0]*(g10-g00)
			hi := g01 + frac[0]*(g11-g01)

			return lo + frac[1]*(hi-lo)
		}
		v0 := interp(idx[2])
		v1 := interp(idx[2] + 1)
		out[c] = v0 + frac[2]*(v1-v0)
	}

	return out
}
