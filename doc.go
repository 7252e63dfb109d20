// Package curve3 provides exact closed-form evaluation of points and tangent
// vectors along quadratic and cubic Bézier curves in 3D space, together with
// the float64 vector primitives the curve math depends on.
//
// It is designed as the trusted inner layer of a larger geometry or CAD
// system: every operation is a pure function over immutable values, and none
// of them validates its input. In particular, the curve parameter t is
// expected to already lie in [0, 1] when [QuadBez.Eval], [QuadBez.Tangent],
// [CubicBez.Eval], or [CubicBez.Tangent] is called. Callers that cannot
// guarantee this should go through [Checked], which reports a domain error
// before delegating, or clamp with [Clamp01].
//
// # Vectors
//
// [Vec3] is a plain value type. Operations return new values and never mutate
// their receiver, so vectors and curves can be shared freely across
// goroutines without synchronization. Non-finite inputs are not rejected;
// NaN and infinity propagate according to IEEE-754. The one defensive branch
// in the package is [Vec3.Normalize], which returns the zero vector unchanged
// instead of dividing by zero.
//
// # Curves
//
// [QuadBez] and [CubicBez] evaluate positions and derivatives through the
// Bernstein basis of their degree: a scalar weight is computed per control
// point, then a single weighted sum combines the control points. Both curve
// types implement [ParametricCurve].
//
// # Tolerances
//
// [Vec3.IsClose] combines a caller-supplied absolute tolerance with the
// fixed package-wide [RelativeTolerance], matching the comparison semantics
// of the host library this package interoperates with. The shared constants
// [AbsoluteTolerance], [RelativeTolerance], [Tau], and [MaxSplineOrder] must
// keep their exact values; collaborating code depends on numeric
// compatibility.
package curve3
