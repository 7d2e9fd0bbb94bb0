// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Ldexp returns x * 2^n, exact in both limbs since the multiplier is a
// power of two.
func Ldexp(x DDouble, n int) DDouble {
	return DDouble{Hi: math.Ldexp(x.Hi, n), Lo: math.Ldexp(x.Lo, n)}
}

// Scalbn is an alias for Ldexp, matching the host math library's naming.
func Scalbn(x DDouble, n int) DDouble { return Ldexp(x, n) }

// Ilogb returns the base-2 exponent of x, taken from Hi.
func Ilogb(x DDouble) int { return math.Ilogb(x.Hi) }

// Logb returns the base-2 exponent of x as a DDouble, taken from Hi.
func Logb(x DDouble) DDouble { return FromFloat(math.Logb(x.Hi)) }

// Ceil returns the smallest integral DDouble value >= x.
func Ceil(x DDouble) DDouble {
	// If Hi was not already an integer, rounding it settles the whole
	// answer; this also covers NaN, since then hi != x.Hi. We cannot
	// simply round both limbs since they may carry the same sign.
	hi := math.Ceil(x.Hi)
	if hi != x.Hi {
		return FromFloat(hi)
	}
	// Hi is already an integer, so round Lo instead; add_small
	// renormalizes in case that pushes the magnitude past the limit.
	lo := math.Ceil(x.Lo)
	return ExDouble(x.Hi).AddSmall(lo)
}

// Floor returns the largest integral DDouble value <= x.
func Floor(x DDouble) DDouble {
	hi := math.Floor(x.Hi)
	if hi != x.Hi {
		return FromFloat(hi)
	}
	lo := math.Floor(x.Lo)
	return ExDouble(x.Hi).AddSmall(lo)
}

// Trunc returns x with its fractional part removed.
func Trunc(x DDouble) DDouble {
	hi := math.Trunc(x.Hi)
	if hi != x.Hi {
		return FromFloat(hi)
	}
	// Hi is already an integer, so round Lo instead, towards the same
	// direction Hi's truncation would have gone (towards -Inf for x > 0,
	// towards +Inf for x < 0), then renormalize.
	var lo float64
	if math.Signbit(x.Hi) {
		lo = math.Ceil(x.Lo)
	} else {
		lo = math.Floor(x.Lo)
	}
	return ExDouble(x.Hi).AddSmall(lo)
}

// Round returns x rounded to the nearest integral DDouble value, halves
// away from zero.
func Round(x DDouble) DDouble {
	nudge := math.Copysign(0.5, x.Hi)
	return Trunc(x.AddFloat(nudge))
}

// Modf returns the integer and fractional parts of x. Both results carry
// x's sign, even when intpart is zero.
func Modf(x DDouble) (intPart, fracPart DDouble) {
	intPart = Trunc(x)
	fracPart = x.Sub(intPart)
	return
}

// Nextafter returns the next representable DDouble after x in the
// direction of y. There are two equally defensible notions of "next" for
// a varying-epsilon type like DDouble (next z with z != x, or next z with
// z - x != 0); this follows the reference implementation's choice of the
// latter, which sweeps across fewer distinct values.
func Nextafter(x, y DDouble) DDouble {
	if Equal(x, y) {
		return x
	}
	dir := math.Inf(1)
	if Greater(x, y) {
		dir = math.Inf(-1)
	}

	var lo float64
	if x.Lo == 0 {
		lo = math.Copysign(minNormal, dir)
	} else {
		lo = math.Nextafter(x.Lo, dir)
	}
	z := ExDouble(x.Hi).AddSmall(lo)

	if !IsFinite(z) {
		if IsInf(x) && Signbit(x) != Signbit(y) {
			return Copysign(Limits.Max, x.Hi)
		}
		return FromFloat(math.Nextafter(x.Hi, dir))
	}
	return z
}
