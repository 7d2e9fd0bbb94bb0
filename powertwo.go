// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import (
	"fmt"
	"math"
)

// PowerOfTwo is an ephemeral marker wrapping a host float the caller
// asserts is ±2ⁿ or 0. Multiplying or dividing a DDouble by a PowerOfTwo is
// exact and scales both hunks equally, so it never has to renormalize.
//
// PowerOfTwo is never stored in a DDouble; it exists only at call sites
// that already know their scale factor is exact, such as range reduction
// by a factor of 1/2 or 2.
type PowerOfTwo struct{ x float64 }

// NewPowerOfTwo returns the PowerOfTwo marker for 2ⁿ.
func NewPowerOfTwo(n int) PowerOfTwo { return PowerOfTwo{x: math.Ldexp(1, n)} }

// PowerOfTwoFromFloat wraps x, which must be an exact power of two (or 0),
// as a PowerOfTwo. It panics if x is not, since that would silently break
// the non-overlap invariant of every DDouble computed from it.
func PowerOfTwoFromFloat(x float64) PowerOfTwo {
	if !isPowerOfTwo(x) {
		panic(fmt.Sprintf("xprec: %g is not an exact power of two", x))
	}
	return PowerOfTwo{x: x}
}

// Float64 returns the wrapped value.
func (p PowerOfTwo) Float64() float64 { return p.x }

// Mul returns the product of two power-of-two markers, itself a power of
// two.
func (p PowerOfTwo) Mul(q PowerOfTwo) PowerOfTwo { return PowerOfTwo{x: p.x * q.x} }

// Div returns the quotient of two power-of-two markers, itself a power of
// two.
func (p PowerOfTwo) Div(q PowerOfTwo) PowerOfTwo { return PowerOfTwo{x: p.x / q.x} }
