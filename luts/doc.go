// Package luts provides look-up table containers and the Cinespace .csp
// serialisation.
//
// LUT1D maps a scalar through a sampled curve with linear reconstruction;
// LUT3D maps an RGB triplet through a cube with trilinear reconstruction.
// Both carry a name, an input domain and optional comments, and write
// themselves in the CSPLUTV100 text format.
package luts
