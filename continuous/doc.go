// Package continuous models continuous functions reconstructed from
// discrete samples.
//
// # What
//
// Two containers build on the algebra package's interpolators and
// extrapolators:
//
//   - Signal - a single-channel function y(x) stored as sorted
//     (domain, range) samples, interpolated inside the domain and
//     extrapolated outside it.
//   - MultiSignals - a labelled set of channels sharing one domain, with
//     vectorised evaluation, row/point assignment, elementwise arithmetic,
//     tabular export and JSON serialisation.
//
// # Why
//
// Sampled physical quantities (spectral distributions, transfer curves,
// time series) are continuous phenomena observed at discrete points.
// Treating the samples as a continuous function - query anywhere, grow the
// domain by assignment, combine channels arithmetically - removes the
// bookkeeping every consumer would otherwise repeat.
//
// # How
//
//	sig, err := continuous.NewSignal(values, domain)
//	y, err := sig.At(533.5)
//
//	ms, err := continuous.NewMultiSignals(
//	    continuous.FromColumns(cols),
//	    continuous.WithDomain(domain),
//	    continuous.WithLabels("R", "G", "B"),
//	)
//	rows, err := ms.Evaluate(queries)
//
// Reconstruction defaults to windowed Lanczos-3 kernel interpolation with
// constant NaN extrapolation; both are configurable per container or per
// channel, and additional interpolators can be installed with
// RegisterInterpolator.
//
// Assignments at domain points not yet sampled grow the shared domain; the
// growth is transactional across channels, so a failed assignment leaves
// the container untouched.
//
// Recoverable conditions (a non-finite value written into a live domain)
// are reported through SetWarningHandler instead of an error; construction
// with a non-finite domain fails outright.
//
// See also package table for the labelled tabular export and package
// algebra for the numeric kernels underneath.
package continuous
