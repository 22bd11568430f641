package continuous_test

import (
	"fmt"

	"github.com/katalvlaran/spectra/continuous"
)

// ExampleNewSignal reconstructs a ramp between its samples.
func ExampleNewSignal() {
	sig, _ := continuous.NewSignal(
		[]float64{10, 20, 30},
		[]float64{0, 1, 2},
		continuous.WithInterpolator(continuous.InterpolatorLinear),
	)

	y, _ := sig.At(0.5)
	fmt.Printf("%.1f\n", y)
	// Output:
	// 15.0
}

// ExampleNewMultiSignals evaluates three labelled channels at once.
func ExampleNewMultiSignals() {
	ms, _ := continuous.NewMultiSignals(
		continuous.FromColumns([][]float64{
			{1, 2, 3},
			{10, 20, 30},
			{100, 200, 300},
		}),
		continuous.WithLabels("R", "G", "B"),
		continuous.WithInterpolator(continuous.InterpolatorLinear),
	)

	row, _ := ms.At(1.5)
	fmt.Println(ms.Labels())
	fmt.Printf("%.1f %.1f %.1f\n", row[0], row[1], row[2])
	// Output:
	// [R G B]
	// 2.5 25.0 250.0
}

// ExampleMultiSignals_SetAt grows the shared domain by assignment.
func ExampleMultiSignals_SetAt() {
	ms, _ := continuous.NewMultiSignals(
		continuous.FromColumns([][]float64{{10, 20}, {30, 40}}),
	)

	_ = ms.SetAt(0.5, []float64{15, 35})
	fmt.Println(ms.Domain())
	// Output:
	// [0 0.5 1]
}

// ExampleMultiSignals_Add combines channels with a scalar elementwise.
func ExampleMultiSignals_Add() {
	ms, _ := continuous.NewMultiSignals(
		continuous.FromColumns([][]float64{{1, 2}, {3, 4}}),
	)

	sum, _ := ms.Add(continuous.Scalar(10))
	fmt.Println(sum.Range())
	// Output:
	// [[11 13] [12 14]]
}
