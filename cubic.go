package curve3

import "iter"

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier curve with four control points.
type CubicBez struct {
	P0 Vec3
	P1 Vec3
	P2 Vec3
	P3 Vec3
}

// Eval evaluates the curve at parameter t using the Bernstein basis of
// degree 3.
func (c CubicBez) Eval(t float64) Vec3 {
	a, b, cc, d := cubicWeights(t)
	return weighted4(c.P0, c.P1, c.P2, c.P3, a, b, cc, d)
}

// Tangent evaluates the derivative of the curve at parameter t. The result
// is a direction vector, not normalized.
func (c CubicBez) Tangent(t float64) Vec3 {
	a, b, cc, d := cubicTangentWeights(t)
	return weighted4(c.P0, c.P1, c.P2, c.P3, a, b, cc, d)
}

// cubicWeights computes the Bernstein weights for the four control points.
// Factoring the shared powers of t and (1-t) out of the vector combination
// keeps Eval and Tangent structurally identical.
func cubicWeights(t float64) (a, b, c, d float64) {
	t2 := t * t
	mt := 1.0 - t
	mt2 := mt * mt
	return mt2 * mt, 3.0 * mt2 * t, 3.0 * mt * t2, t2 * t
}

func cubicTangentWeights(t float64) (a, b, c, d float64) {
	t2 := t * t
	mt := 1.0 - t
	return -3.0 * mt * mt, 3.0 * (1.0 - 4.0*t + 3.0*t2), 3.0 * t * (2.0 - 3.0*t), 3.0 * t2
}

func (c CubicBez) Start() Vec3 {
	return c.P0
}

func (c CubicBez) End() Vec3 {
	return c.P3
}

// Reverse returns the same curve with the control point order reversed.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Approximate approximates the curve by vertices, yielding segments + 1
// points. The first and last points are the exact start and end control
// points.
func (c CubicBez) Approximate(segments int) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if segments < 1 {
			return
		}
		if !yield(c.P0) {
			return
		}
		dt := 1.0 / float64(segments)
		for i := 1; i < segments; i++ {
			if !yield(c.Eval(dt * float64(i))) {
				return
			}
		}
		yield(c.P3)
	}
}

// ApproxLength returns an estimate of the curve's length, computed as the
// sum of chord lengths over segments line segments.
func (c CubicBez) ApproxLength(segments int) float64 {
	return approxLength(c.Approximate(segments))
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
