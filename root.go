// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Sqrt returns the square root of a.
//
// For a <= 0 or non-finite a, it defers entirely to math.Sqrt on Hi (giving
// NaN for negative a, +Inf for +Inf, and so on). Otherwise it refines the
// host-float approximation with one step of Newton-Raphson applied to
// f(x) = a - 1/x^2 (Karp, "High-Precision Division and Square Root", 1993,
// Table II), which only needs a reciprocal-free correction term.
func Sqrt(a DDouble) DDouble {
	y0 := math.Sqrt(a.Hi)
	if a.Hi <= 0 || !IsFinite(a) {
		return FromFloat(y0)
	}
	x0Half := 0.5 / y0
	deltaY := x0Half * (math.FMA(-y0, y0, a.Hi) + a.Lo)
	return ExDouble(y0).AddSmall(deltaY)
}

// maxExponentHalf is std::numeric_limits<double>::max_exponent / 2: the
// exponent split point used to rescale Hypot's operands away from the
// edges of the float64 range before squaring them.
const maxExponentHalf = 1024 / 2

// hypotLarge and hypotSmall bound the "safe to square" range; operands
// outside it are rescaled by the reciprocal factor and the result scaled
// back, so x*x and y*y can neither overflow nor underflow.
var (
	hypotLarge = NewPowerOfTwo(maxExponentHalf)
	hypotSmall = NewPowerOfTwo(-maxExponentHalf)
)

// Hypot returns sqrt(x*x + y*y), computed without intermediate overflow
// or underflow, and rejecting NaN outright rather than letting an
// accompanying infinity win (matching the error table: "NaN in any input
// propagates").
func Hypot(x, y DDouble) DDouble {
	if IsNaN(x) || IsNaN(y) {
		return Limits.QuietNaN
	}
	if IsInf(x) || IsInf(y) {
		return Limits.Infinity
	}
	x = x.Abs()
	y = y.Abs()
	if Greater(y, x) {
		x, y = y, x
	}

	switch {
	case Greater(x, FromFloat(hypotLarge.Float64())):
		// Large values: scale down to avoid overflowing x*x or y*y.
		x = x.MulPow2(hypotSmall)
		y = y.MulPow2(hypotSmall)
		return Sqrt(x.Mul(x).AddSmall(y.Mul(y))).MulPow2(hypotLarge)
	case Greater(FromFloat(hypotSmall.Float64()), x):
		// Small values: scale up to avoid underflowing x*x or y*y.
		x = x.MulPow2(hypotLarge)
		y = y.MulPow2(hypotLarge)
		return Sqrt(x.Mul(x).AddSmall(y.Mul(y))).MulPow2(hypotSmall)
	default:
		return Sqrt(x.Mul(x).AddSmall(y.Mul(y)))
	}
}

// TrigComplement returns sqrt(1 - x*x) for |x| <= 1, the companion used by
// the inverse trigonometric functions to convert between sin/cos domains
// without losing precision near x = 0.
func TrigComplement(x DDouble) DDouble {
	if Greater(x.Abs(), FromFloat(1.0)) {
		return Limits.QuietNaN
	}
	if math.Abs(x.Hi) > 0.5 {
		return Sqrt(FromFloat(1).Sub(x.Mul(x)))
	}

	// sqrt(1-x*x) loses about half its digits of precision for small x,
	// but that means half the digits are still accurate, so compute the
	// function for Hi first and correct with one Taylor term.
	x0 := ExDouble(x.Hi)
	dx := x.Lo
	y0 := Sqrt(FromFloat(1.0).SubFloat(float64(x0) * float64(x0)))

	// f(x) = sqrt(1-x^2) = f(x0) - x0/f(x0) * (x - x0) + ...
	dy := -float64(x0) * dx / y0.Hi
	return y0.AddSmallFloat(dy)
}
