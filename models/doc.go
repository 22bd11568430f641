// Package models implements colour model conversions built on the
// continuous containers' numeric conventions.
//
// Provided conversions:
//
//   - ST 2084 (PQ) opto-electronic transfer function and its inverse.
//   - ICtCp - the BT.2100 opponent representation of BT.2020 RGB, built on
//     the PQ non-linearity.
//   - CAM02-UCS - the Luo et al. (2006) uniform colour spaces (LCD, SCD,
//     UCS) over CIECAM02 JMh correlates, with their colour-difference
//     metric.
//
// All conversions operate on [3]float64 triplets and are pure functions;
// vectorised application over containers is the caller's composition.
package models
