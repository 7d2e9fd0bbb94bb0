// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Source is the minimal generator shape UniformSample needs: one uniform
// random 64-bit word per call, matching math/rand/v2's Source interface
// so either that package's generators or a custom PRNG can drive it.
type Source interface {
	Uint64() uint64
}

// uint64ToDDouble converts a 64-bit word to an exact DDouble, splitting it
// into a 32-bit-shifted high half and a low half so neither limb loses any
// bits (float64 cannot hold a full uint64's mantissa on its own).
func uint64ToDDouble(w uint64) DDouble {
	hi := math.Ldexp(float64(w>>32), 32)
	lo := float64(w & 0xffffffff)
	s, e := TwoSum(hi, lo)
	return DDouble{Hi: s, Lo: e}
}

// wordRange is 2^64, the exclusive upper bound of a Source word.
var wordRange = DDouble{Hi: math.Ldexp(1, 64)}

// generateCanonical draws a value uniformly distributed in [0, 1) with
// about `bits` bits of entropy, by folding successive generator words
// through repeated division, the way xprec's C++ generate_canonical does
// for a fixed-range word generator.
func generateCanonical(rng Source, bits int) DDouble {
	if bits <= 0 {
		return FromFloat(0)
	}
	const wordBits = 64
	m := (bits + wordBits - 1) / wordBits
	if m < 1 {
		m = 1
	}

	sum := uint64ToDDouble(rng.Uint64()).Div(wordRange)
	for k := 1; k < m; k++ {
		sum = sum.Add(uint64ToDDouble(rng.Uint64()))
		sum = sum.Div(wordRange)
	}
	return sum
}

// UniformSample draws a value uniformly distributed over [a, b) using rng
// as the entropy source, with full DDouble precision (106 bits, i.e. 2
// 64-bit words folded together).
func UniformSample(rng Source, a, b DDouble) DDouble {
	u01 := generateCanonical(rng, 106)
	return b.Sub(a).Mul(u01).Add(a)
}
