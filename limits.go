// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// limitsT mirrors std::numeric_limits<DDouble> from the reference C++
// library: a fixed table of boundary values, computed once at package
// init from the corresponding float64 limits.
type limitsT struct {
	Min, Max, Lowest, Epsilon, RoundError DDouble
	Infinity, QuietNaN, SignalingNaN      DDouble
	DenormMin                             DDouble
}

// epsD is std::numeric_limits<double>::epsilon(): the distance from 1.0 to
// the next larger float64, 2^-52. It is twice eps (the "unit roundoff"
// u = 2^-53 used throughout the EFT error-bound literature) and the two
// must not be confused.
const epsD = 1.0 / (1 << 52)

const radix = 2

// Limits holds the DDouble analogue of numeric_limits<DDouble>.
var Limits = limitsT{
	// Denormalization in the Lo limb means the smallest normalized
	// DDouble has a higher exponent (by 52) than the smallest normalized
	// float64.
	Min: DDouble{Hi: minNormal / epsD},

	Max: DDouble{
		Hi: math.MaxFloat64,
		Lo: math.MaxFloat64 * epsD / radix / radix,
	},
	Lowest: DDouble{
		Hi: -math.MaxFloat64,
		Lo: -math.MaxFloat64 * epsD / radix / radix,
	},
	Epsilon:      DDouble{Hi: epsD * epsD / radix},
	RoundError:   DDouble{Hi: 0.5},
	Infinity:     DDouble{Hi: math.Inf(1), Lo: math.Inf(1)},
	QuietNaN:     DDouble{Hi: math.NaN(), Lo: math.NaN()},
	SignalingNaN: DDouble{Hi: math.NaN(), Lo: math.NaN()},
	DenormMin:    DDouble{Hi: etaUnderflow},
}
