// Package algebra provides the numeric engines behind the continuous-signal
// containers: interpolation, extrapolation and small float-array utilities.
//
// 🚀 What lives here?
//
//	Fitted evaluators over a sampled function (x, y):
//	  • KernelInterpolator    — windowed kernel reconstruction (Lanczos/sinc/…)
//	    over a uniformly spaced domain
//	  • LinearInterpolator    — piecewise linear, any strictly ascending domain
//	  • CubicSplineInterpolator — natural cubic spline (tridiagonal solve)
//	  • Extrapolator          — behaviour outside the sampled bounds:
//	    Constant (NaN by default) or Linear endpoint-slope extension
//
// ✨ Design:
//   - Constructors validate (lengths, ordering, uniformity) and return
//     sentinel errors; Evaluate never fails after successful construction.
//   - All evaluators are immutable once built; owners rebuild them after
//     mutating their sample arrays.
//   - Array helpers (Linspace, Tstack, Tsplit, Lerp, IsUniform, …) back the
//     channel-wise packing done by the continuous package.
//
// Performance: evaluation is O(len(queries) · window) for the kernel engine
// and O(len(queries) · log n) for the spline; helpers are O(n).
package algebra
