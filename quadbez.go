package curve3

import "iter"

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier curve with three control points.
type QuadBez struct {
	P0 Vec3
	P1 Vec3
	P2 Vec3
}

// Eval evaluates the curve at parameter t using the Bernstein basis of
// degree 2.
func (q QuadBez) Eval(t float64) Vec3 {
	a, b, c := quadWeights(t)
	return weighted3(q.P0, q.P1, q.P2, a, b, c)
}

// Tangent evaluates the derivative of the curve at parameter t. The result
// is a direction vector, not normalized.
func (q QuadBez) Tangent(t float64) Vec3 {
	a, b, c := quadTangentWeights(t)
	return weighted3(q.P0, q.P1, q.P2, a, b, c)
}

func quadWeights(t float64) (a, b, c float64) {
	mt := 1.0 - t
	return mt * mt, 2.0 * t * mt, t * t
}

func quadTangentWeights(t float64) (a, b, c float64) {
	return -2.0 * (1.0 - t), 2.0 - 4.0*t, 2.0 * t
}

func (q QuadBez) Start() Vec3 {
	return q.P0
}

func (q QuadBez) End() Vec3 {
	return q.P2
}

// Reverse returns the same curve with the control point order reversed.
func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Raise raises the order by 1.
//
// It returns a cubic Bézier curve that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Approximate approximates the curve by vertices, yielding segments + 1
// points. The first and last points are the exact start and end control
// points.
func (q QuadBez) Approximate(segments int) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if segments < 1 {
			return
		}
		if !yield(q.P0) {
			return
		}
		dt := 1.0 / float64(segments)
		for i := 1; i < segments; i++ {
			if !yield(q.Eval(dt * float64(i))) {
				return
			}
		}
		yield(q.P2)
	}
}

// ApproxLength returns an estimate of the curve's length, computed as the
// sum of chord lengths over segments line segments.
func (q QuadBez) ApproxLength(segments int) float64 {
	return approxLength(q.Approximate(segments))
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func approxLength(points iter.Seq[Vec3]) float64 {
	var length float64
	var prev Vec3
	first := true
	for p := range points {
		if !first {
			length += prev.Distance(p)
		}
		prev = p
		first = false
	}
	return length
}
