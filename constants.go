// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

// Mathematical constants, each accurate to about 32 decimal digits,
// following xprec::numbers in the reference C++ library (itself modeled
// on C++20's std::numbers).
var (
	E         = DDouble{Hi: 2.718281828459045, Lo: 1.4456468917292502e-16}
	Log2E     = DDouble{Hi: 1.4426950408889634, Lo: 2.0355273740931033e-17}
	Log10E    = DDouble{Hi: 0.4342944819032518, Lo: 1.098319650216765e-17}
	Pi        = DDouble{Hi: 3.141592653589793, Lo: 1.2246467991473532e-16}
	InvPi     = DDouble{Hi: 0.3183098861837907, Lo: -1.9678676675182486e-17}
	InvSqrtPi = DDouble{Hi: 0.5641895835477563, Lo: 7.66772980658294e-18}
	Ln2       = DDouble{Hi: 0.6931471805599453, Lo: 2.3190468138462996e-17}
	Ln10      = DDouble{Hi: 2.302585092994046, Lo: -2.1707562233822494e-16}
	Sqrt2     = DDouble{Hi: 1.4142135623730951, Lo: -9.667293313452913e-17}
	Sqrt3     = DDouble{Hi: 1.7320508075688772, Lo: 1.0035084221806903e-16}
	InvSqrt3  = DDouble{Hi: 0.5773502691896257, Lo: 3.3450280739356345e-17}
	EGamma    = DDouble{Hi: 0.5772156649015329, Lo: -4.942915152430645e-18}
	Phi       = DDouble{Hi: 1.618033988749895, Lo: -5.432115203682506e-17}
)

// PiHalf and PiQuarter are the range-reduction anchors for the
// trigonometric family (component G): Pi/2 and Pi/4 respectively.
var (
	PiHalf    = Pi.MulPow2(NewPowerOfTwo(-1))
	PiQuarter = Pi.MulPow2(NewPowerOfTwo(-2))
)
