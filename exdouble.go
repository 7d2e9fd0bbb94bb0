// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// ExDouble is an ephemeral marker wrapping a single float64 that flags it
// for promotion into DDouble arithmetic without paying the cost of a full
// DDouble operation. It is never stored; it exists only to select cheaper
// algorithm variants at call sites where an operand is known to be a
// single host float, matching the corresponding overloads of the
// reference C++ library.
type ExDouble float64

// AddSmall returns the DDouble a+b, provided b is known not to dominate a
// in magnitude (i.e. the exponent of a is at least that of b). This is
// Algorithm 1 of Joldes et al., 3 flops; it is the building block every
// other DDouble addition reduces to.
func (a ExDouble) AddSmall(b float64) DDouble {
	s := float64(a) + b
	z := s - float64(a)
	t := b - z
	return DDouble{Hi: s, Lo: t}
}

// Add returns the DDouble a+b with no precondition on relative magnitude.
// This is Algorithm 2 of Joldes et al., 6 flops.
func (a ExDouble) Add(b ExDouble) DDouble {
	s := float64(a) + float64(b)
	aPrime := s - float64(b)
	bPrime := s - aPrime
	deltaA := float64(a) - aPrime
	deltaB := float64(b) - bPrime
	t := deltaA + deltaB
	return DDouble{Hi: s, Lo: t}
}

// Sub returns the DDouble a-b.
func (a ExDouble) Sub(b ExDouble) DDouble { return a.Add(-b) }

// Mul returns the DDouble a*b. This is Algorithm 3 of Joldes et al.,
// 2 flops given a correctly rounded FMA.
func (a ExDouble) Mul(b ExDouble) DDouble {
	pi := float64(a) * float64(b)
	rho := math.FMA(float64(a), float64(b), -pi)
	return DDouble{Hi: pi, Lo: rho}
}

// ReciprocalEx returns the DDouble reciprocal of a single float64, as the
// y_lo = 0 special case of the general DDouble reciprocal (part of
// Algorithm 18 of Joldes et al.).
func ReciprocalEx(y ExDouble) DDouble {
	th := 1.0 / float64(y)
	rh := math.FMA(-float64(y), th, 1.0)
	delta := ExDouble(rh).Mul(ExDouble(th))
	return delta.AddFloat(th)
}

// DivEx returns the DDouble a/b, the ExDouble/ExDouble special case of
// Algorithm 18.
func DivEx(a, b ExDouble) DDouble {
	return ReciprocalEx(b).MulFloat(float64(a))
}
