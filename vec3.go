package curve3

import (
	"fmt"
	"math"
)

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y, and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector with the same direction as v and the given
// magnitude. If the magnitude of v is exactly zero, v is returned unchanged
// rather than producing NaN components from a division by zero.
func (v Vec3) Normalize(length float64) Vec3 {
	m := v.Hypot()
	if m == 0.0 {
		return v
	}
	return v.Mul(length / m)
}

// Distance returns the euclidean distance between two vectors interpreted as
// points.
func (v Vec3) Distance(o Vec3) float64 {
	return o.Sub(v).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two vectors
// interpreted as points.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return o.Sub(v).Hypot2()
}

// Lerp linearly interpolates between two vectors. The factor t is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the midpoint of two vectors interpreted as points.
func (v Vec3) Midpoint(o Vec3) Vec3 {
	return Vec3{
		X: 0.5 * (v.X + o.X),
		Y: 0.5 * (v.Y + o.Y),
		Z: 0.5 * (v.Z + o.Z),
	}
}

// IsClose reports whether v and o are approximately equal on all three axes.
// An axis passes if the difference is within absTol, or within
// [RelativeTolerance] relative to either operand's coordinate on that axis.
func (v Vec3) IsClose(o Vec3, absTol float64) bool {
	return isclose(v.X, o.X, absTol) &&
		isclose(v.Y, o.Y, absTol) &&
		isclose(v.Z, o.Z, absTol)
}

// IsZero reports whether all components are within [AbsoluteTolerance] of
// zero.
func (v Vec3) IsZero() bool {
	return math.Abs(v.X) <= AbsoluteTolerance &&
		math.Abs(v.Y) <= AbsoluteTolerance &&
		math.Abs(v.Z) <= AbsoluteTolerance
}

// IsInf reports whether at least one of x, y, and z is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y, and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
