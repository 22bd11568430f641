package table_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/continuous"
	"github.com/katalvlaran/spectra/table"
)

// sampleTable returns a two-column table over index 0..2.
func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(
		[]float64{0, 1, 2},
		[]string{"a", "b"},
		[][]float64{{10, 20, 30}, {1, 2, 3}},
	)
	require.NoError(t, err)

	return tb
}

// TestNew_Validation verifies label/column cardinality, uniqueness and
// column lengths are enforced.
func TestNew_Validation(t *testing.T) {
	_, err := table.New([]float64{0}, []string{"a"}, nil)
	require.ErrorIs(t, err, table.ErrLabelMismatch)

	_, err = table.New([]float64{0, 1}, []string{"a", "a"}, [][]float64{{1, 2}, {3, 4}})
	require.ErrorIs(t, err, table.ErrDuplicateLabel)

	_, err = table.New([]float64{0, 1}, []string{"a"}, [][]float64{{1}})
	require.ErrorIs(t, err, table.ErrRaggedColumns)
}

// TestTable_Accessors verifies index, labels, columns and rows round out
// consistently.
func TestTable_Accessors(t *testing.T) {
	tb := sampleTable(t)
	assert.Equal(t, 3, tb.Len())
	assert.Equal(t, []float64{0, 1, 2}, tb.Index())
	assert.Equal(t, []string{"a", "b"}, tb.Labels())
	assert.Equal(t, []float64{1, 2, 3}, tb.Column("b"))
	assert.Nil(t, tb.Column("missing"))
	assert.Equal(t, []float64{20, 2}, tb.Row(1))
	assert.Equal(t, [][]float64{{10, 1}, {20, 2}, {30, 3}}, tb.Rows())
}

// TestTable_CopiesAreIndependent verifies accessors return defensive
// copies.
func TestTable_CopiesAreIndependent(t *testing.T) {
	tb := sampleTable(t)
	col := tb.Column("a")
	col[0] = -1
	assert.Equal(t, []float64{10, 20, 30}, tb.Column("a"))
}

// TestTable_MultiSignalsRoundTrip verifies container -> table -> container
// preserves domain, labels and ranges.
func TestTable_MultiSignalsRoundTrip(t *testing.T) {
	ms, err := continuous.NewMultiSignals(
		continuous.FromColumns([][]float64{{10, 20, 30}, {1, 2, 3}}),
		continuous.WithLabels("a", "b"),
	)
	require.NoError(t, err)

	tab, err := ms.ToTabular()
	require.NoError(t, err)
	tb, ok := tab.(*table.Table)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tb.Labels())
	assert.Equal(t, []float64{10, 20, 30}, tb.Column("a"))

	back, err := tb.ToMultiSignals()
	require.NoError(t, err)
	assert.True(t, ms.Equal(back))

	direct, err := table.FromMultiSignals(ms)
	require.NoError(t, err)
	assert.True(t, tb.Equal(direct))
}

// TestTable_Equal verifies deep equality including NaN cells.
func TestTable_Equal(t *testing.T) {
	a, err := table.New([]float64{0, 1}, []string{"x"}, [][]float64{{1, math.NaN()}})
	require.NoError(t, err)
	b, err := table.New([]float64{0, 1}, []string{"x"}, [][]float64{{1, math.NaN()}})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := table.New([]float64{0, 1}, []string{"x"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

// TestTable_CSVRoundTrip verifies write/read preserves values, labels and
// NaN cells.
func TestTable_CSVRoundTrip(t *testing.T) {
	tb, err := table.New(
		[]float64{0, 0.5},
		[]string{"x"},
		[][]float64{{1.25, math.NaN()}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tb.WriteCSV(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "index,x\n"))

	decoded, err := table.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, tb.Index(), decoded.Index())
	assert.Equal(t, 1.25, decoded.Column("x")[0])
	assert.True(t, math.IsNaN(decoded.Column("x")[1]))
}

// TestReadCSV_BadPayload verifies malformed rows and values are rejected.
func TestReadCSV_BadPayload(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader("index,x\noops,1\n"))
	require.Error(t, err)
}

// TestTable_String verifies the aligned text rendering.
func TestTable_String(t *testing.T) {
	tb := sampleTable(t)
	out := tb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "index  a  b", lines[0])
	assert.Equal(t, "0  10  1", lines[1])
}
