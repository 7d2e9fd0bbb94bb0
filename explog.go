// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// expHalves holds exp(k/2) for k = 1..31.
var expHalves = [31]DDouble{
	{1.6487212707001282, -4.731568479435833e-17},
	{2.718281828459045, 1.4456468917292502e-16},
	{4.4816890703380645, 3.0481759556536343e-16},
	{7.38905609893065, -1.7971139497839148e-16},
	{12.182493960703473, 2.0334002173348147e-16},
	{20.085536923187668, -1.8275625525512858e-16},
	{33.11545195869231, 2.2435601403927554e-15},
	{54.598150033144236, 2.8741578015844115e-15},
	{90.01713130052181, 2.550844346114049e-15},
	{148.4131591025766, 3.4863514900464198e-15},
	{244.69193226422038, 4.129320187450839e-15},
	{403.4287934927351, 1.2359628024450387e-14},
	{665.1416330443618, 2.990469256473133e-14},
	{1096.6331584284585, 9.869752640434095e-14},
	{1808.0424144560632, 3.6612201665204784e-14},
	{2980.9579870417283, -2.7103295816873633e-14},
	{4914.768840299134, 2.17317454126359e-14},
	{8103.083927575384, -2.1530877621067177e-13},
	{13359.726829661873, -8.496858340658619e-13},
	{22026.465794806718, -1.3780134700517372e-12},
	{36315.502674246636, 1.577797006387782e-12},
	{59874.14171519782, 1.7895764888916994e-12},
	{98715.7710107605, 3.036676373480473e-12},
	{162754.79141900392, 5.30065881322063e-12},
	{268337.2865208745, -2.0035114163950887e-11},
	{442413.3920089205, 1.2118711752313224e-11},
	{729416.3698477013, 5.1483277361034595e-11},
	{1.2026042841647768e6, -1.5000525764327354e-11},
	{1.9827592635375687e6, 2.845770459793355e-11},
	{3.2690173724721107e6, -3.075806431120808e-11},
	{5.389698476283012e6, 4.098121666636582e-10},
}

// expSixteens holds exp(16*k) for k = 1..44.
var expSixteens = [44]DDouble{
	{8.886110520507872e6, 5.321182483501564e-10},
	{7.896296018268069e13, 0.007660978022635108},
	{7.016735912097631e20, 30185.471599886117},
	{6.235149080811617e27, 1.3899738872492847e11},
	{5.54062238439351e34, 2.1811937023229343e18},
	{4.923458286012058e41, 1.3869835129739753e25},
	{4.375039447261341e48, 1.035824156236645e32},
	{3.887708405994595e55, 2.707966110366217e39},
	{3.454660656717546e62, 1.8553902103629043e46},
	{3.0698496406442424e69, 4.375620509828095e52},
	{2.7279023188106115e76, 6.6492459414351406e59},
	{2.4240441494100796e83, -3.8332753349400205e66},
	{2.1540324218248465e90, 6.568050851363196e73},
	{1.9140970165092822e97, -1.497464557916617e81},
	{1.700887763567586e104, 1.4773861394382237e88},
	{1.5114276650041035e111, 1.4805989167614457e94},
	{1.3430713274979614e118, -6.561438244448466e101},
	{1.1934680253072109e125, -3.301231394418859e108},
	{1.0605288775572162e132, 5.4744408887427266e115},
	{9.423976816163585e138, -2.7555072985830676e122},
	{8.374249953113352e145, -3.529195534423469e129},
	{7.441451060972311e152, 4.251237045552673e136},
	{6.612555656075053e159, -3.4828210031110127e143},
	{5.875990038289236e166, 7.682543674132907e149},
	{5.221469689764144e173, -3.041154182825333e157},
	{4.639855674272614e180, -3.3453058659461497e164},
	{4.123027032079202e187, 1.8602059512155307e171},
	{3.663767388609735e194, -1.8555200045340274e178},
	{3.255664193661862e201, 5.148254191579011e184},
	{2.8930191842539453e208, -2.8880381060655904e191},
	{2.5707688209230085e215, 1.1853726094570251e199},
	{2.2844135865397565e222, 1.3549224944023444e206},
	{2.0299551604542052e229, 1.2942147572086164e213},
	{1.803840590747136e236, 1.820681001928355e218},
	{1.6029126850757262e243, -2.463627227554342e226},
	{1.4243659274306933e250, -5.204358467973364e233},
	{1.2657073052794837e257, -3.983584155610672e240},
	{1.124721500132769e264, -8.843155706148207e247},
	{9.994399554971195e270, 8.925025806205413e253},
	{8.881133903158874e277, -4.948247489077345e261},
	{7.891873741089921e284, 2.4630459641303726e268},
	{7.012806227721897e291, -1.1759583274063904e275},
	{6.231657119844268e298, 1.1619020533730335e281},
	{5.5375193892845935e305, 1.5239358093004245e289},
}

// expHalvesAt returns exp(x/2) for any integer x, by decomposing x into a
// halves part (mod 32) and a sixteens part, folding them into a running
// product. Negative x reflects through the reciprocal.
func expHalvesAt(x int) DDouble {
	if x < 0 {
		return Reciprocal(expHalvesAt(-x))
	}

	res := FromFloat(1.0)
	seeded := false
	mulInto := func(f DDouble) {
		if !seeded {
			res = f
			seeded = true
		} else {
			res = res.Mul(f)
		}
	}

	if h := x % 32; h != 0 {
		mulInto(expHalves[h-1])
	}
	if s := x / 32; s != 0 {
		mulInto(expSixteens[s-1])
	}
	if !seeded {
		return FromFloat(1.0)
	}
	return res
}

// expm1Kernel computes exp(x)-1 for |x.Hi| < 0.3 via a continued-fraction
// expansion of the exponential function (converges to about 2e-32 in that
// range).
func expm1Kernel(x DDouble) DDouble {
	xsq := x.Mul(x)
	r := xsq.DivFloat(34.0).AddFloat(30.0)
	r = xsq.Div(r).AddFloat(26.0)
	r = xsq.Div(r).AddFloat(22.0)
	r = xsq.Div(r).AddFloat(18.0)
	r = xsq.Div(r).AddFloat(14.0)
	r = xsq.Div(r).AddFloat(10.0)
	r = xsq.Div(r).AddFloat(6.0)
	r = x.Neg().AddSmall(xsq.Div(r)).AddFloat(2.0)
	r = x.Div(r)
	r = r.MulPow2(NewPowerOfTwo(1))
	return r
}

// Exp returns e**x.
func Exp(x DDouble) DDouble {
	if math.IsNaN(x.Hi) {
		return x
	}
	if x.Hi >= 709.0 {
		return FromFloat(math.Inf(1))
	}
	if x.Hi <= -709.0 {
		return FromFloat(0)
	}

	// x = y/2 + z
	y := math.Round(2 * x.Hi)
	z := x.SubFloat(y / 2)

	// exp(z + y/2) = (1 + expm1(z)) * exp(1/2)^y
	expZ := FromFloat(1.0).Add(expm1Kernel(z))
	expY := expHalvesAt(int(y))
	return expZ.Mul(expY)
}

// Expm1 returns e**x - 1, accurately even for x close to 0.
func Expm1(x DDouble) DDouble {
	if math.Abs(x.Hi) < 0.25 {
		return expm1Kernel(x)
	}
	res := Exp(x)
	if x.Hi < 75 {
		res = res.SubFloat(1.0)
	}
	return res
}

// Log returns the natural logarithm of x.
func Log(x DDouble) DDouble {
	logX := FromFloat(math.Log(x.Hi))
	if !IsFinite(logX) {
		return logX
	}
	// Abramowitz & Stegun 4.1.30: log(x) = log(x0) + 2(x-x0)/(x+x0) + O((x-x0)^3)
	x0 := Exp(logX)
	corr := x.Sub(x0).Div(x.Add(x0)).MulPow2(NewPowerOfTwo(1))
	return logX.Add(corr)
}

// Log1p returns the natural logarithm of 1+x, accurately even for x close
// to 0.
func Log1p(x DDouble) DDouble {
	logX := FromFloat(math.Log1p(x.Hi))
	if !IsFinite(logX) {
		return logX
	}
	// log(1+x) = log(1+x0) + 2(x-x0)/(2+x+x0) + O((x-x0)^3), using the
	// log1p <-> expm1 pair instead of log <-> exp.
	x0 := Expm1(logX)
	denom := x.Add(x0).AddFloat(2.0)
	corr := x.Sub(x0).Div(denom).MulPow2(NewPowerOfTwo(1))
	return logX.Add(corr)
}

// Pow returns x**n for an integer exponent, by repeated squaring.
func Pow(x DDouble, n int) DDouble {
	if n == 0 {
		return FromFloat(1.0)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := FromFloat(1.0)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return Reciprocal(result)
	}
	return result
}

// PowFloat returns x**y for a real DDouble exponent, via exp(y * log(x)),
// mirroring the pow(DDouble,DDouble) overload alongside Pow's integer form.
func PowFloat(x, y DDouble) DDouble {
	return Exp(y.Mul(Log(x)))
}
