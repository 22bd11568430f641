package continuous_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/algebra"
	"github.com/katalvlaran/spectra/continuous"
)

// benchContainer builds a three-channel container with n samples.
func benchContainer(b *testing.B, n int) *continuous.MultiSignals {
	b.Helper()
	domain := algebra.ARange(0, float64(n), 1)
	cols := make([][]float64, 3)
	for c := range cols {
		col := make([]float64, n)
		for i := range col {
			col[i] = float64(i + c)
		}
		cols[c] = col
	}
	ms, err := continuous.NewMultiSignals(
		continuous.FromColumns(cols),
		continuous.WithDomain(domain),
	)
	require.NoError(b, err)

	return ms
}

// BenchmarkMultiSignals_Evaluate measures vectorised kernel reconstruction.
func BenchmarkMultiSignals_Evaluate(b *testing.B) {
	ms := benchContainer(b, 1024)
	queries := algebra.Linspace(0, 1023, 4096)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ms.Evaluate(queries); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMultiSignals_Arithmetic measures elementwise scalar arithmetic.
func BenchmarkMultiSignals_Arithmetic(b *testing.B) {
	ms := benchContainer(b, 1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ms.ArithmeticalOperation(continuous.Scalar(1), continuous.OpAdd, true); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSignal_Fit measures interpolator fitting on mutation.
func BenchmarkSignal_Fit(b *testing.B) {
	domain := algebra.ARange(0, 1024, 1)
	values := algebra.Linspace(0, 1, 1024)
	sig, err := continuous.NewSignal(values, domain)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sig.SetRange(values); err != nil {
			b.Fatal(err)
		}
		if _, err := sig.Evaluate([]float64{511.5}); err != nil {
			b.Fatal(err)
		}
	}
}
