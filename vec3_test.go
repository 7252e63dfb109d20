package curve3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0, 2.5)
	assert.Equal(t, V3(-3, 2, 5.5), a.Add(b))
	assert.Equal(t, V3(5, 2, 0.5), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Mul(2))
	assert.Equal(t, V3(0.5, 1, 1.5), a.Div(2))
	assert.Equal(t, V3(-1, -2, -3), a.Negate())
}

func TestVec3DotCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 32.0, V3(1, 2, 3).Dot(V3(4, 5, 6)))

	// The cross product is perpendicular to both operands.
	a := V3(2, -1, 0.5)
	b := V3(0.3, 4, -2)
	c := a.Cross(b)
	assert.InDelta(t, 0, a.Dot(c), 1e-12)
	assert.InDelta(t, 0, b.Dot(c), 1e-12)
}

func TestVec3Magnitude(t *testing.T) {
	v := V3(2, 3, 6)
	assert.Equal(t, 49.0, v.Hypot2())
	assert.Equal(t, 7.0, v.Hypot())
}

func TestVec3Distance(t *testing.T) {
	p1 := V3(0, 10, 0)
	p2 := V3(0, 5, 0)
	assert.Equal(t, 5.0, p1.Distance(p2))

	p3 := V3(-11, 1, 2)
	p4 := V3(-7, -2, 2)
	assert.Equal(t, 5.0, p3.Distance(p4))
	assert.Equal(t, 25.0, p3.DistanceSquared(p4))
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 0, 4).Normalize(10)
	assert.Equal(t, V3(6, 0, 8), v)
	assert.InDelta(t, 1, V3(1, 2, 3).Normalize(1).Hypot(), 1e-15)
}

func TestVec3NormalizeZero(t *testing.T) {
	// A zero vector has no direction to scale; it must come back unchanged
	// instead of as NaN components.
	v := V3(0, 0, 0).Normalize(5)
	assert.Equal(t, V3(0, 0, 0), v)
	assert.False(t, v.IsNaN())
}

func TestVec3Lerp(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(5, -2, 7)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, V3(3, 0, 5), a.Lerp(b, 0.5))
	assert.Equal(t, a.Midpoint(b), a.Lerp(b, 0.5))
	// Out-of-range factors extrapolate.
	assert.Equal(t, V3(9, -6, 11), a.Lerp(b, 2))
}

func TestVec3IsClose(t *testing.T) {
	v := V3(1, 1, 1)
	assert.True(t, v.IsClose(v, 0))
	assert.True(t, v.IsClose(V3(1+1e-10, 1, 1), 1e-9))
	assert.False(t, v.IsClose(V3(1.1, 1, 1), 1e-9))

	// The relative term scales with the coordinates: a difference far above
	// any absolute tolerance still passes for large values.
	assert.True(t, V3(1e12, 0, 0).IsClose(V3(1e12+1, 0, 0), 0))
	assert.False(t, V3(1e-3, 0, 0).IsClose(V3(2e-3, 0, 0), 1e-9))
}

func TestVec3IsZero(t *testing.T) {
	assert.True(t, V3(0, 0, 0).IsZero())
	assert.True(t, V3(1e-13, -1e-13, 0).IsZero())
	assert.False(t, V3(1e-11, 0, 0).IsZero())
}

func TestVec3NonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	assert.True(t, V3(nan, 0, 0).IsNaN())
	assert.True(t, V3(0, inf, 0).IsInf())
	assert.False(t, V3(1, 2, 3).IsNaN())
	assert.False(t, V3(1, 2, 3).IsInf())
	// NaN propagates through arithmetic rather than being rejected.
	assert.True(t, V3(nan, 0, 0).Add(V3(1, 1, 1)).IsNaN())
}
