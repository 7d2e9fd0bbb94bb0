// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Section: DDouble arithmetic.
//
// Every algorithm here is lifted directly from M. Joldes, J.-M. Muller,
// V. Popescu, "Tight and rigorous error bounds for basic building blocks
// of double-word arithmetic", ACM Trans. Math. Softw. 44, 1-27 (2018),
// built on top of the ExDouble primitives in exdouble.go (themselves
// Algorithms 1-3 of the same paper) and math.FMA.
// Flop counts and error bounds are quoted alongside each method.

// AddFloat returns x+y. This is Algorithm 4, 10 flops, error bound 2u².
func (x DDouble) AddFloat(y float64) DDouble {
	s := ExDouble(x.Hi).Add(ExDouble(y))
	v := x.Lo + s.Lo
	return ExDouble(s.Hi).AddSmall(v)
}

// AddSmallFloat returns x+y, provided |x| is known not to be dominated by
// |y|. This is Algorithm 4 modified, 7 flops, error bound 2u².
func (x DDouble) AddSmallFloat(y float64) DDouble {
	s := ExDouble(x.Hi).AddSmall(y)
	v := x.Lo + s.Lo
	return ExDouble(s.Hi).AddSmall(v)
}

// SubFloat returns x-y.
func (x DDouble) SubFloat(y float64) DDouble { return x.AddFloat(-y) }

// Add returns x+y. This is Algorithm 6, 20 flops, error bound 3u²+13u³.
func (x DDouble) Add(y DDouble) DDouble {
	s := ExDouble(x.Hi).Add(ExDouble(y.Hi))
	t := ExDouble(x.Lo).Add(ExDouble(y.Lo))
	c := s.Lo + t.Hi
	v := ExDouble(s.Hi).AddSmall(c)
	w := t.Lo + v.Lo
	return ExDouble(v.Hi).AddSmall(w)
}

// AddSmall returns x+y, provided |x| is known not to be dominated by |y|.
// This is Algorithm 6 with the AddSmall variant of Algorithm 1 on the Hi
// limbs, 17 flops, error bound 3u²+13u³.
func (x DDouble) AddSmall(y DDouble) DDouble {
	s := ExDouble(x.Hi).AddSmall(y.Hi)
	t := ExDouble(x.Lo).Add(ExDouble(y.Lo))
	c := s.Lo + t.Hi
	v := ExDouble(s.Hi).AddSmall(c)
	w := t.Lo + v.Lo
	return ExDouble(v.Hi).AddSmall(w)
}

// Sub returns x-y.
func (x DDouble) Sub(y DDouble) DDouble { return x.Add(y.Neg()) }

// MulFloat returns x*y. This is Algorithm 9, 6 flops, error bound 2u².
func (x DDouble) MulFloat(y float64) DDouble {
	c := ExDouble(x.Hi).Mul(ExDouble(y))
	cl3 := math.FMA(x.Lo, y, c.Lo)
	return ExDouble(c.Hi).AddSmall(cl3)
}

// Mul returns x*y. This is Algorithm 12, 9 flops, error bound 4u² (the
// corrected bound; the original paper's analysis undercounted by one
// term).
func (x DDouble) Mul(y DDouble) DDouble {
	c := ExDouble(x.Hi).Mul(ExDouble(y.Hi))
	tl0 := x.Lo * y.Lo
	tl1 := math.FMA(x.Hi, y.Lo, tl0)
	cl2 := math.FMA(x.Lo, y.Hi, tl1)
	cl3 := c.Lo + cl2
	return ExDouble(c.Hi).AddSmall(cl3)
}

// DivFloat returns x/y. This is Algorithm 15, 10 flops, error bound 3u².
func (x DDouble) DivFloat(y float64) DDouble {
	th := ExDouble(x.Hi / y)
	pi := th.Mul(ExDouble(y))
	deltaH := x.Hi - pi.Hi
	deltaT := deltaH - pi.Lo
	delta := deltaT + x.Lo
	tl := delta / y
	return th.AddSmall(tl)
}

// Reciprocal returns 1/y. This is the first half of Algorithm 18, 22
// flops, error bound 2.3u².
func Reciprocal(y DDouble) DDouble {
	th := 1.0 / y.Hi
	rh := math.FMA(-y.Hi, th, 1.0)
	rl := -y.Lo * th
	e := ExDouble(rh).AddSmall(rl)
	delta := e.MulFloat(th)
	return delta.AddFloat(th)
}

// Div returns x/y. This is Algorithm 18, 31 flops, error bound 10u² (6u²
// observed).
func (x DDouble) Div(y DDouble) DDouble { return x.Mul(Reciprocal(y)) }

// DivFloatBy returns x/y for a plain float64 numerator. This is Algorithm
// 18 specialized to x_lo = 0, 28 flops.
func DivFloatBy(x float64, y DDouble) DDouble { return Reciprocal(y).MulFloat(x) }

// MulPow2 returns x*y, exact since y is an exact power of two: it scales
// both limbs equally and needs no renormalization.
func (x DDouble) MulPow2(y PowerOfTwo) DDouble {
	return DDouble{Hi: x.Hi * y.Float64(), Lo: x.Lo * y.Float64()}
}

// DivPow2 returns x/y, exact for the same reason as MulPow2.
func (x DDouble) DivPow2(y PowerOfTwo) DDouble {
	return DDouble{Hi: x.Hi / y.Float64(), Lo: x.Lo / y.Float64()}
}
