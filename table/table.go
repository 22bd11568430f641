package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectra/continuous"
)

// Sentinel errors for table construction and export.
var (
	// ErrRaggedColumns indicates columns whose lengths disagree with the
	// index.
	ErrRaggedColumns = errors.New("table: column lengths must match the index")

	// ErrLabelMismatch indicates label and column counts that differ.
	ErrLabelMismatch = errors.New("table: labels must match column count")

	// ErrDuplicateLabel indicates a label used by more than one column.
	ErrDuplicateLabel = errors.New("table: duplicate column label")
)

// Table is an immutable index column plus labelled value columns. It backs
// the tabular export of continuous containers and satisfies
// continuous.Tabular.
type Table struct {
	index   []float64
	labels  []string
	columns map[string][]float64
}

var _ continuous.Tabular = (*Table)(nil)

func init() {
	continuous.RegisterTabularBuilder(func(index []float64, labels []string, columns [][]float64) continuous.Tabular {
		t, err := New(index, labels, columns)
		if err != nil {
			// The exporting container guarantees aligned data; reaching
			// this path means its invariants are broken.
			panic(err)
		}

		return t
	})
}

// New builds a Table from an index, column labels and their columns. Every
// column must match the index length; labels must be unique and match the
// column count.
func New(index []float64, labels []string, columns [][]float64) (*Table, error) {
	if len(labels) != len(columns) {
		return nil, fmt.Errorf("%w: %d labels for %d columns", ErrLabelMismatch, len(labels), len(columns))
	}
	t := &Table{
		index:   append([]float64(nil), index...),
		labels:  append([]string(nil), labels...),
		columns: make(map[string][]float64, len(labels)),
	}
	for i, label := range labels {
		if _, dup := t.columns[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		if len(columns[i]) != len(index) {
			return nil, fmt.Errorf("%w: column %q has %d rows, index has %d", ErrRaggedColumns, label, len(columns[i]), len(index))
		}
		t.columns[label] = append([]float64(nil), columns[i]...)
	}

	return t, nil
}

// Index returns a copy of the index column.
func (t *Table) Index() []float64 { return append([]float64(nil), t.index...) }

// Labels returns a copy of the column labels in column order.
func (t *Table) Labels() []string { return append([]string(nil), t.labels...) }

// Column returns a copy of the labelled column, or nil when absent.
func (t *Table) Column(label string) []float64 {
	col, ok := t.columns[label]
	if !ok {
		return nil
	}

	return append([]float64(nil), col...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.index) }

// Row returns the i-th row in column order, without the index value.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.labels))
	for j, label := range t.labels {
		row[j] = t.columns[label][i]
	}

	return row
}

// Rows returns the full value matrix in row-major order.
func (t *Table) Rows() [][]float64 {
	rows := make([][]float64, len(t.index))
	for i := range rows {
		rows[i] = t.Row(i)
	}

	return rows
}

// FromMultiSignals builds the tabular view of a continuous container: the
// shared domain becomes the index and each channel a labelled column.
func FromMultiSignals(ms *continuous.MultiSignals) (*Table, error) {
	labels := ms.Labels()
	columns := make([][]float64, 0, len(labels))
	for _, ch := range ms.Signals() {
		columns = append(columns, ch.Range())
	}

	return New(ms.Domain(), labels, columns)
}

// Equal reports deep equality of index, labels and columns; NaN cells
// compare equal to NaN.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.index) != len(o.index) || len(t.labels) != len(o.labels) {
		return false
	}
	for i := range t.index {
		if t.index[i] != o.index[i] {
			return false
		}
	}
	for i, label := range t.labels {
		if o.labels[i] != label {
			return false
		}
		a, b := t.columns[label], o.columns[label]
		for j := range a {
			if a[j] != b[j] && !(math.IsNaN(a[j]) && math.IsNaN(b[j])) {
				return false
			}
		}
	}

	return true
}

// ToMultiSignals builds a continuous container from the table: the index
// becomes the shared domain and each column a labelled channel.
func (t *Table) ToMultiSignals(opts ...continuous.Option) (*continuous.MultiSignals, error) {
	return continuous.NewMultiSignals(continuous.FromTabular(t), opts...)
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders the table as aligned "index  columns..." rows under a
// label header.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "index  %s\n", strings.Join(t.labels, "  "))
	for i, x := range t.index {
		cells := make([]string, 0, 1+len(t.labels))
		cells = append(cells, formatCell(x))
		for _, v := range t.Row(i) {
			cells = append(cells, formatCell(v))
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteCSV writes the table as CSV with an "index" header column followed
// by the labels.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"index"}, t.labels...)); err != nil {
		return err
	}
	record := make([]string, 1+len(t.labels))
	for i, x := range t.index {
		record[0] = formatCell(x)
		for j, v := range t.Row(i) {
			record[1+j] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table previously written by WriteCSV: an "index" header
// column followed by column labels, then numeric rows.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("%w: empty header", ErrLabelMismatch)
	}
	labels := header[1:]

	var index []float64
	columns := make([][]float64, len(labels))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: row width %d vs header %d", ErrRaggedColumns, len(record), len(header))
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("table: bad index value %q: %w", record[0], err)
		}
		index = append(index, x)
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("table: bad value %q in column %q: %w", cell, labels[j], err)
			}
			columns[j] = append(columns[j], v)
		}
	}

	return New(index, labels, columns)
}
