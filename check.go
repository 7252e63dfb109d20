package curve3

import (
	"errors"
	"fmt"
)

var (
	// ErrParamRange is reported by [Checked] when the curve parameter lies
	// outside [0, 1].
	ErrParamRange = errors.New("curve parameter outside [0, 1]")

	// ErrSplineOrder is reported by [CheckSplineOrder] for unsupported
	// spline orders.
	ErrSplineOrder = errors.New("unsupported spline order")
)

// Clamp01 clamps t into the range [0, 1]. NaN clamps to 0.
func Clamp01(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	if t > 0.0 {
		return t
	}
	// t <= 0 or NaN
	return 0.0
}

// Checked is a validating view of a [ParametricCurve]. The wrapped curve
// trusts its input entirely; Checked rejects out-of-range parameters before
// delegating, so that untrusted callers cannot reach the permissive inner
// layer with invalid values.
type Checked struct {
	C ParametricCurve
}

// Eval evaluates the wrapped curve at parameter t. It returns an error
// wrapping [ErrParamRange] if t is not in [0, 1].
func (cc Checked) Eval(t float64) (Vec3, error) {
	if err := checkParam(t); err != nil {
		return Vec3{}, err
	}
	return cc.C.Eval(t), nil
}

// Tangent evaluates the derivative of the wrapped curve at parameter t. It
// returns an error wrapping [ErrParamRange] if t is not in [0, 1].
func (cc Checked) Tangent(t float64) (Vec3, error) {
	if err := checkParam(t); err != nil {
		return Vec3{}, err
	}
	return cc.C.Tangent(t), nil
}

func checkParam(t float64) error {
	// The negated comparison also rejects NaN.
	if !(t >= 0.0 && t <= 1.0) {
		return fmt.Errorf("t = %g: %w", t, ErrParamRange)
	}
	return nil
}

// CheckSplineOrder reports whether order is a usable spline order
// (degree + 1). Orders below 2 describe no curve, and orders above
// [MaxSplineOrder] are not supported by the host library. Collaborators
// constructing composite curves atop the evaluators must consult this
// before construction; the evaluators themselves do not.
func CheckSplineOrder(order int) error {
	if order < 2 || order > MaxSplineOrder {
		return fmt.Errorf("order = %d, supported range [2, %d]: %w", order, MaxSplineOrder, ErrSplineOrder)
	}
	return nil
}
