package curve3

// ParametricCurve describes a curve parametrized by a scalar.
//
// Eval and Tangent are pure functions of the control points and t. Both
// expect t in the range [0, 1] and do not check it; out-of-range parameters
// evaluate the underlying polynomial but are unsupported territory. Use
// [Checked] for a validating view.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Vec3
	// Tangent evaluates the derivative of the curve at parameter t. The
	// result is not normalized; compose with [Vec3.Normalize] for a unit
	// tangent.
	Tangent(t float64) Vec3
	// Start returns the start point of the curve.
	Start() Vec3
	// End returns the end point of the curve.
	End() Vec3
}

// weighted3 combines three control points with their basis weights.
func weighted3(p0, p1, p2 Vec3, a, b, c float64) Vec3 {
	return p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c))
}

// weighted4 combines four control points with their basis weights.
func weighted4(p0, p1, p2, p3 Vec3, a, b, c, d float64) Vec3 {
	return p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c)).Add(p3.Mul(d))
}
