// Package spectra is your toolkit for sampled colour and signal data —
// from continuous reconstruction of discrete measurements to colour model
// conversions and LUT serialisation.
//
// 🚀 What is spectra?
//
//	A small, focused library that brings together:
//		• Numeric kernels: Lanczos/sinc kernel, linear & cubic-spline interpolation
//		• Extrapolation: constant fills and endpoint-slope extension
//		• Continuous containers: Signal (one channel) & MultiSignals (labelled set)
//		• Tabular views: labelled tables with CSV round-trips
//		• Colour models: ST 2084 (PQ), BT.2100 ICtCp, CAM02-UCS (Luo 2006)
//		• LUTs: 1D curves & 3D cubes with Cinespace .csp output
//
// ✨ Why choose spectra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – reference-matched golden values in the tests
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – register custom interpolators and channel factories
//
// Under the hood, everything is organized under five subpackages:
//
//	algebra/    — interpolators, extrapolators & shared numeric helpers
//	continuous/ — Signal & MultiSignals containers with JSON serialisation
//	table/      — labelled tabular export/import (CSV, text rendering)
//	models/     — ST 2084, ICtCp and CAM02-UCS conversions
//	luts/       — LUT1D/LUT3D containers & Cinespace .csp writer
//
// Quick example:
//
//	ms, _ := continuous.NewMultiSignals(
//	    continuous.FromColumns(cols),
//	    continuous.WithDomain(wavelengths),
//	    continuous.WithLabels("R", "G", "B"),
//	)
//	rows, _ := ms.Evaluate(queries)
//
// Dive into the per-package docs for full examples and the exact
// reconstruction semantics.
//
//	go get github.com/katalvlaran/spectra
package spectra
