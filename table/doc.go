// Package table provides the labelled tabular view of continuous
// containers.
//
// A Table is an immutable index column plus labelled value columns of equal
// length. Importing the package installs the tabular export capability into
// package continuous, so MultiSignals.ToTabular yields *Table; the reverse
// direction is ToMultiSignals.
//
//	import _ "github.com/katalvlaran/spectra/table"
//
// Tables render as aligned text and write themselves as CSV, which is the
// interchange format the rest of the module's tooling consumes.
package table
