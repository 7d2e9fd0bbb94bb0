// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// DDouble represents a real number as the unevaluated sum Hi + Lo of two
// float64 values, satisfying the non-overlap invariant |Lo| <= ulp(Hi)/2
// (equivalently |Lo| <= eps/2 * |Hi|), unless Hi is zero, infinite or NaN,
// in which case Lo is unconstrained and ignored by every operation below.
//
// DDouble is a plain value type: trivial to copy, safe to share across
// goroutines, and never mutated in place.
type DDouble struct {
	Hi, Lo float64
}

// NewDDouble builds a DDouble from an already-normalized (hi, lo) pair. It
// does not renormalize; callers constructing a DDouble from an arbitrary
// pair of floats should go through FastTwoSum or TwoSum instead.
func NewDDouble(hi, lo float64) DDouble { return DDouble{Hi: hi, Lo: lo} }

// FromFloat promotes a single float64 to DDouble.
func FromFloat(x float64) DDouble { return DDouble{Hi: x} }

// FromInt promotes an int to DDouble. Ints outside the range
// representable by a float64 mantissa will still round, same as
// float64(n); only n between roughly ±2^53 round trips exactly through a
// single Hi, same as host float64 would.
func FromInt(n int) DDouble { return DDouble{Hi: float64(n)} }

// Float64 returns the double-precision approximation of x, i.e. just Hi.
func (x DDouble) Float64() float64 { return x.Hi }

// Neg returns -x.
func (x DDouble) Neg() DDouble { return DDouble{-x.Hi, -x.Lo} }

// Abs returns |x|, without touching the invariant between Hi and Lo.
func (x DDouble) Abs() DDouble {
	if x.Hi < 0 || (x.Hi == 0 && math.Signbit(x.Hi)) {
		return x.Neg()
	}
	return x
}
