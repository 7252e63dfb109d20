package curve3

import "math"

// Shared numeric constants. These values are fixed by the host library this
// package interoperates with and must not change.
const (
	// AbsoluteTolerance is the default absolute tolerance for floating-point
	// comparisons.
	AbsoluteTolerance = 1e-12

	// RelativeTolerance is the relative tolerance applied by [Vec3.IsClose]
	// regardless of the caller-supplied absolute tolerance.
	RelativeTolerance = 1e-9

	// Tau is the circle constant 2π.
	Tau = 6.283185307179586

	// MaxSplineOrder is the highest supported spline order (degree + 1).
	// Collaborators constructing composite curves enforce it with
	// [CheckSplineOrder]; the evaluators in this package do not.
	MaxSplineOrder = 12
)

// isclose reports whether a and b are approximately equal, combining the
// caller's absolute tolerance with the fixed package-wide relative
// tolerance. This reproduces the comparison of PEP 485's math.isclose.
func isclose(a, b, absTol float64) bool {
	d := math.Abs(a - b)
	return d <= math.Abs(RelativeTolerance*b) ||
		d <= math.Abs(RelativeTolerance*a) ||
		d <= absTol
}
