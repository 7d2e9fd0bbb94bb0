// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Equal reports whether x and y represent the same (hi, lo) pair.
func Equal(x, y DDouble) bool { return x.Hi == y.Hi && x.Lo == y.Lo }

// NotEqual reports whether x and y differ.
func NotEqual(x, y DDouble) bool { return x.Hi != y.Hi || x.Lo != y.Lo }

// LessEqual reports whether x <= y, comparing Hi first and breaking ties on
// Lo.
func LessEqual(x, y DDouble) bool {
	return x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo <= y.Lo)
}

// Less reports whether x < y.
func Less(x, y DDouble) bool {
	return x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo < y.Lo)
}

// GreaterEqual reports whether x >= y.
func GreaterEqual(x, y DDouble) bool {
	return x.Hi > y.Hi || (x.Hi == y.Hi && x.Lo >= y.Lo)
}

// Greater reports whether x > y.
func Greater(x, y DDouble) bool {
	return x.Hi > y.Hi || (x.Hi == y.Hi && x.Lo > y.Lo)
}

// IsFinite reports whether x is neither infinite nor NaN. Only Hi is
// consulted: the non-overlap invariant guarantees Lo cannot be the only
// source of non-finiteness.
func IsFinite(x DDouble) bool { return !math.IsInf(x.Hi, 0) && !math.IsNaN(x.Hi) }

// IsInf reports whether x is +Inf or -Inf.
func IsInf(x DDouble) bool { return math.IsInf(x.Hi, 0) }

// IsNaN reports whether x is NaN.
func IsNaN(x DDouble) bool { return math.IsNaN(x.Hi) }

// IsZero reports whether x is zero. Determined from Hi alone, same
// rationale as IsFinite.
func IsZero(x DDouble) bool { return x.Hi == 0 }

// IsNormal reports whether x is within the normal range of DDouble.
// Denormalization in a double-double is a strange concept since Lo may be
// a denormal float64 even while the whole value is still "normal"; the
// test that matters is whether Hi itself stays normal after being scaled
// down by one ulp, i.e. whether a further ulp of precision in Lo would
// still be representable.
func IsNormal(x DDouble) bool {
	return isNormalFloat(x.Hi * epsD)
}

func isNormalFloat(x float64) bool {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return false
	}
	return math.Abs(x) >= minNormal
}

// Fpclassify mirrors math.Float64bits-style classification, delegating
// entirely to Hi (zero is determined correctly from Hi alone).
func Fpclassify(x DDouble) string {
	switch {
	case math.IsNaN(x.Hi):
		return "NaN"
	case math.IsInf(x.Hi, 0):
		return "Inf"
	case x.Hi == 0:
		return "Zero"
	case isNormalFloat(x.Hi):
		return "Normal"
	default:
		return "Subnormal"
	}
}

// Fmin returns the smaller of a and b, with NaN treated as the largest
// value: if exactly one operand is NaN the other is returned.
func Fmin(a, b DDouble) DDouble {
	if LessEqual(a, b) || IsNaN(b) {
		return a
	}
	return b
}

// Fmax returns the larger of a and b. If exactly one operand is NaN the
// other is returned.
func Fmax(a, b DDouble) DDouble {
	if LessEqual(a, b) || IsNaN(a) {
		return b
	}
	return a
}

// Signbit reports the sign bit of x, taken from Hi.
func Signbit(x DDouble) bool { return math.Signbit(x.Hi) }

// Copysign returns a value with the magnitude of mag and the sign of sgn.
// The sign is determined from mag's and sgn's Hi parts; since the signs of
// Hi and Lo need not agree, the whole value is negated rather than
// broadcasting copysign across both limbs.
func Copysign(mag DDouble, sgn float64) DDouble {
	if Signbit(mag) != math.Signbit(sgn) {
		return mag.Neg()
	}
	return mag
}

// CopysignDD returns a value with the magnitude of mag and the sign of
// sgn.Hi.
func CopysignDD(mag, sgn DDouble) DDouble { return Copysign(mag, sgn.Hi) }

// CopysignFloat returns a DDouble with the magnitude of mag and the sign of
// sgn.Hi.
func CopysignFloat(mag float64, sgn DDouble) DDouble {
	return FromFloat(math.Copysign(mag, sgn.Hi))
}

// Swap exchanges the values pointed to by x and y.
func Swap(x, y *DDouble) { *x, *y = *y, *x }
