package luts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DefaultDecimals is the fractional precision of written .csp values.
const DefaultDecimals = 7

const cinespaceHeader = "CSPLUTV100"

func formatValue(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func writeMetadata(w *bufio.Writer, name string, comments []string) {
	w.WriteString("BEGIN METADATA\n")
	w.WriteString(name + "\n")
	for _, c := range comments {
		w.WriteString(c + "\n")
	}
	w.WriteString("END METADATA\n\n")
}

// WriteCinespace1D writes the curve in the CSPLUTV100 1D layout: an
// identity shaper per channel over the curve's domain, then the samples
// replicated across the three channels.
func WriteCinespace1D(w io.Writer, lut *LUT1D, decimals int) error {
	if decimals <= 0 {
		decimals = DefaultDecimals
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(cinespaceHeader + "\n1D\n\n")
	writeMetadata(bw, lut.Name, lut.Comments)

	for i := 0; i < 3; i++ {
		bw.WriteString("2\n")
		fmt.Fprintf(bw, "%s %s\n",
			formatValue(lut.domain[0], decimals),
			formatValue(lut.domain[1], decimals))
		bw.WriteString("0.0 1.0\n")
	}

	fmt.Fprintf(bw, "\n%d %d %d\n", lut.Size(), lut.Size(), lut.Size())
	for _, v := range lut.table {
		cell := formatValue(v, decimals)
		fmt.Fprintf(bw, "%s %s %s\n", cell, cell, cell)
	}

	return bw.Flush()
}

// WriteCinespace3D writes the cube in the CSPLUTV100 3D layout: an
// identity shaper per channel over the cube's domain, the size triple, then
// the entries red-fastest.
func WriteCinespace3D(w io.Writer, lut *LUT3D, decimals int) error {
	if decimals <= 0 {
		decimals = DefaultDecimals
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(cinespaceHeader + "\n3D\n\n")
	writeMetadata(bw, lut.Name, lut.Comments)

	for i := 0; i < 3; i++ {
		bw.WriteString("2\n")
		fmt.Fprintf(bw, "%s %s\n",
			formatValue(lut.domain[0][i], decimals),
			formatValue(lut.domain[1][i], decimals))
		bw.WriteString("0.0 1.0\n")
	}

	fmt.Fprintf(bw, "\n%d %d %d\n", lut.size, lut.size, lut.size)
	for _, row := range lut.table {
		fmt.Fprintf(bw, "%s %s %s\n",
			formatValue(row[0], decimals),
			formatValue(row[1], decimals),
			formatValue(row[2], decimals))
	}

	return bw.Flush()
}
