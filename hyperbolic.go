// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// sinhKernel computes sinh(x) via its Taylor series around 0, valid for
// |x| < 0.15: large enough that exp(x)-exp(-x) would otherwise lose
// precision to cancellation.
func sinhKernel(x DDouble) DDouble {
	xsq := x.Mul(x)
	r := x
	xpow := x
	for i := 3; i <= 17; i += 2 {
		xpow = xpow.Mul(xsq)
		r = r.AddSmall(reciprocalFactorialAt(i).Mul(xpow))
	}
	return r
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x DDouble) DDouble {
	x = x.Abs()
	res := Exp(x)
	if x.Hi < 36.5 {
		res = res.Add(Reciprocal(res))
	}
	return res.MulPow2(NewPowerOfTwo(-1))
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x DDouble) DDouble {
	if !IsFinite(x) {
		return x
	}
	if math.Abs(x.Hi) < 0.15 {
		return sinhKernel(x)
	}
	if x.Hi < 0 {
		return Sinh(x.Neg()).Neg()
	}

	res := Exp(x)
	if x.Hi < 36.5 {
		res = res.Sub(Reciprocal(res))
	}
	return res.MulPow2(NewPowerOfTwo(-1))
}

// tanhKernel computes tanh(x) via a continued fraction expansion
// (Abramowitz & Stegun 4.5.70), valid for |x| < 0.2.
func tanhKernel(x DDouble) DDouble {
	xsq := x.Mul(x)
	r := xsq.DivFloat(19.0)
	r = xsq.Div(r.AddFloat(17.0))
	r = xsq.Div(r.AddFloat(15.0))
	r = xsq.Div(r.AddFloat(13.0))
	r = xsq.Div(r.AddFloat(11.0))
	r = xsq.Div(r.AddFloat(9.0))
	r = xsq.Div(r.AddFloat(7.0))
	r = xsq.Div(r.AddFloat(5.0))
	r = xsq.Div(r.AddFloat(3.0))
	r = x.Div(r.AddFloat(1.0))
	return r
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x DDouble) DDouble {
	if IsNaN(x) {
		return x
	}
	if math.Abs(x.Hi) < 0.2 {
		return tanhKernel(x)
	}
	if math.Abs(x.Hi) > 36.5 {
		return FromFloat(math.Copysign(1.0, x.Hi))
	}

	expX := Exp(x)
	expMX := Reciprocal(expX)
	return expX.Sub(expMX).Div(expX.Add(expMX))
}

// Acosh returns the inverse hyperbolic cosine of x. The domain is
// restricted to x >= 1; values below that return NaN.
func Acosh(x DDouble) DDouble {
	if x.Hi < 1.0 {
		return Limits.QuietNaN
	}
	if !IsFinite(x) {
		return x
	}

	arg := x
	if arg.Hi <= 1e16 {
		arg = arg.AddSmall(Sqrt(arg.Mul(arg).SubFloat(1.0)))
	} else {
		arg = arg.MulPow2(NewPowerOfTwo(1))
	}
	return Log(arg)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x DDouble) DDouble {
	if !IsFinite(x) {
		return x
	}

	if math.Abs(x.Hi) < 1.0 {
		y0 := FromFloat(math.Asinh(x.Hi))
		x0 := Sinh(y0)
		return y0.AddSmall(x.Sub(x0).Div(Hypot(FromFloat(1.0), x0)))
	}

	arg := x.Abs()
	if arg.Hi <= 1e16 {
		arg = Sqrt(arg.Mul(arg).AddFloat(1.0)).AddSmall(arg)
	} else {
		arg = arg.MulPow2(NewPowerOfTwo(1))
	}
	return CopysignDD(Log(arg), x)
}

// Atanh returns the inverse hyperbolic tangent of x. The domain is
// restricted to [-1, 1]; |x| > 1 returns NaN, and |x| == 1 returns an
// infinity of the matching sign.
func Atanh(x DDouble) DDouble {
	if x.Hi < 0 {
		return Atanh(x.Neg()).Neg()
	}
	if IsNaN(x) {
		return x
	}
	if Equal(x, FromFloat(1.0)) {
		return FromFloat(math.Inf(1))
	}
	if Greater(x, FromFloat(1.0)) {
		return Limits.QuietNaN
	}

	// atanh(x) = 1/2 log((1+x)/(1-x)) = 1/2 log(1 + 2x/(1-x))
	num := x.MulPow2(NewPowerOfTwo(1))
	denom := FromFloat(1.0).Sub(x)
	return Log1p(num.Div(denom)).MulPow2(NewPowerOfTwo(-1))
}
