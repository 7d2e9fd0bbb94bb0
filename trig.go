// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// sinKernel computes sin(x) via its Taylor series around 0, valid for
// |x| <= pi/4 (converges to about 2e-32 in that range).
func sinKernel(x DDouble) DDouble {
	xsq := x.Mul(x).Neg()
	r := x
	xpow := x
	for i := 3; i <= 27; i += 2 {
		xpow = xpow.Mul(xsq)
		r = r.AddSmall(reciprocalFactorialAt(i).Mul(xpow))
	}
	return r
}

// cosKernel computes cos(x) via its Taylor series around 0, valid for
// |x| <= pi/4.
func cosKernel(x DDouble) DDouble {
	xsq := x.Mul(x).Neg()
	r := FromFloat(1.0)
	xpow := xsq
	r = r.AddSmall(xpow.MulPow2(NewPowerOfTwo(-1)))
	for i := 4; i <= 26; i += 2 {
		xpow = xpow.Mul(xsq)
		r = r.AddSmall(reciprocalFactorialAt(i).Mul(xpow))
	}
	return r
}

// remainderPi2 reduces x modulo pi/2, returning the reduced argument and
// the quadrant (0..3) it fell in.
func remainderPi2(x DDouble) (DDouble, int) {
	n := x.Div(PiHalf)
	if math.Abs(n.Hi) < 0.5 {
		return x, 0
	}
	n = Round(n)
	nInt := int64(n.Hi)
	sector := int(nInt % 4)
	if sector < 0 {
		sector += 4
	}
	return x.Sub(PiHalf.Mul(n)), sector
}

// sinSector evaluates sin of a reduced argument known to lie in the given
// quadrant and within [-pi/4, pi/4].
func sinSector(x DDouble, sector int) DDouble {
	switch sector {
	case 0:
		return sinKernel(x)
	case 1:
		return cosKernel(x)
	case 2:
		return sinKernel(x).Neg()
	default:
		return cosKernel(x).Neg()
	}
}

// Sin returns the sine of x (in radians).
func Sin(x DDouble) DDouble {
	r, sector := remainderPi2(x)
	return sinSector(r, sector)
}

// Cos returns the cosine of x (in radians).
func Cos(x DDouble) DDouble {
	if math.Abs(x.Hi) < PiQuarter.Hi {
		return cosKernel(x)
	}
	r, sector := remainderPi2(x)
	return sinSector(r, (sector+1)%4)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x DDouble) (sin, cos DDouble) {
	return Sin(x), Cos(x)
}

// Tan returns the tangent of x (in radians).
func Tan(x DDouble) DDouble {
	s, c := Sincos(x)
	return s.Div(c)
}

// Asin returns the arc sine of x, in radians, in the range [-pi/2, pi/2].
func Asin(x DDouble) DDouble {
	y0 := FromFloat(math.Asin(x.Hi))
	if !IsFinite(y0) {
		return y0
	}
	if Equal(x.Abs(), FromFloat(1.0)) {
		return Copysign(PiHalf, x.Hi)
	}

	// asin(x) = asin(x0) + (x - x0) / sqrt(1 - x0^2)
	//         = y0 + (x - sin(y0)) / cos(y0)
	x0, w := Sincos(y0)
	return y0.Add(x.Sub(x0).Div(w))
}

// Acos returns the arc cosine of x, in radians, in the range [0, pi].
func Acos(x DDouble) DDouble {
	y0 := FromFloat(math.Acos(x.Hi))
	if !IsFinite(y0) {
		return y0
	}
	if Equal(x, FromFloat(1.0)) {
		return FromFloat(0.0)
	}
	if Equal(x, FromFloat(-1.0)) {
		return Pi
	}

	// acos(x) = acos(x0) - (x - x0) / sqrt(1 - x0^2)
	//         = y0 - (x - cos(y0)) / sin(y0)
	w, x0 := Sincos(y0)
	diff := x0.Sub(x).Div(w)
	return y0.Add(diff)
}

// Atan returns the arc tangent of x, in radians, in the range [-pi/2, pi/2].
func Atan(x DDouble) DDouble {
	if math.Abs(x.Hi) > 1.0 {
		y := Copysign(PiHalf, x.Hi)
		if IsFinite(x) {
			y = y.Sub(Atan(Reciprocal(x)))
		}
		return y
	}

	y0 := FromFloat(math.Atan(x.Hi))
	if !IsFinite(y0) {
		return y0
	}

	s, c := Sincos(y0)
	x0 := s.Div(c)
	return y0.Add(x.Sub(x0).Mul(c).Mul(c))
}

// Atan2 returns the arc tangent of y/x, using the signs of both to
// determine the correct quadrant.
func Atan2(y, x DDouble) DDouble {
	if IsNaN(x) || IsNaN(y) {
		return Limits.QuietNaN
	}
	if IsZero(y) {
		if x.Hi >= 0 {
			return FromFloat(0.0)
		}
		return Pi
	}
	if IsZero(x) {
		return Copysign(PiHalf, y.Hi)
	}

	res := Atan(y.Div(x))
	if x.Hi < 0 {
		res = Copysign(Pi, y.Hi).AddSmall(res)
	}
	return res
}
