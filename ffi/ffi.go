// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package ffi exposes the DDouble scalar operations as a flat, C-callable
// ABI: a layout-compatible {hi, lo float64} record and one exported
// function per unary/binary operation, named with the xprec_ prefix used
// by the reference C interface.
package ffi

/*
typedef struct {
	double hi;
	double lo;
} xprec_ddouble;
*/
import "C"

import "github.com/soniakeys/xprec"

// Record is the Go-side mirror of the C xprec_ddouble struct: two
// consecutive float64s, layout-compatible with xprec.DDouble.
type Record struct {
	Hi, Lo float64
}

func toDD(a C.xprec_ddouble) xprec.DDouble {
	return xprec.DDouble{Hi: float64(a.hi), Lo: float64(a.lo)}
}

func fromDD(r xprec.DDouble) C.xprec_ddouble {
	return C.xprec_ddouble{hi: C.double(r.Hi), lo: C.double(r.Lo)}
}

//export xprec_add
func xprec_add(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Add(toDD(b))) }

//export xprec_sub
func xprec_sub(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Sub(toDD(b))) }

//export xprec_mul
func xprec_mul(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Mul(toDD(b))) }

//export xprec_div
func xprec_div(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Div(toDD(b))) }

//export xprec_neg
func xprec_neg(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Neg()) }

//export xprec_reciprocal
func xprec_reciprocal(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Reciprocal(toDD(a))) }

//export xprec_abs
func xprec_abs(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(toDD(a).Abs()) }

//export xprec_sqrt
func xprec_sqrt(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Sqrt(toDD(a))) }

//export xprec_hypot
func xprec_hypot(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Hypot(toDD(a), toDD(b))) }

//export xprec_exp
func xprec_exp(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Exp(toDD(a))) }

//export xprec_expm1
func xprec_expm1(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Expm1(toDD(a))) }

//export xprec_log
func xprec_log(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Log(toDD(a))) }

//export xprec_log1p
func xprec_log1p(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Log1p(toDD(a))) }

//export xprec_logb
func xprec_logb(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Logb(toDD(a))) }

//export xprec_pow
func xprec_pow(a, b C.xprec_ddouble) C.xprec_ddouble {
	return fromDD(xprec.PowFloat(toDD(a), toDD(b)))
}

//export xprec_nextafter
func xprec_nextafter(a, b C.xprec_ddouble) C.xprec_ddouble {
	return fromDD(xprec.Nextafter(toDD(a), toDD(b)))
}

//export xprec_fmax
func xprec_fmax(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Fmax(toDD(a), toDD(b))) }

//export xprec_fmin
func xprec_fmin(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Fmin(toDD(a), toDD(b))) }

//export xprec_ceil
func xprec_ceil(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Ceil(toDD(a))) }

//export xprec_floor
func xprec_floor(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Floor(toDD(a))) }

//export xprec_round
func xprec_round(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Round(toDD(a))) }

//export xprec_sin
func xprec_sin(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Sin(toDD(a))) }

//export xprec_cos
func xprec_cos(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Cos(toDD(a))) }

//export xprec_tan
func xprec_tan(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Tan(toDD(a))) }

//export xprec_asin
func xprec_asin(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Asin(toDD(a))) }

//export xprec_acos
func xprec_acos(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Acos(toDD(a))) }

//export xprec_atan
func xprec_atan(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Atan(toDD(a))) }

//export xprec_atan2
func xprec_atan2(a, b C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Atan2(toDD(a), toDD(b))) }

//export xprec_sinh
func xprec_sinh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Sinh(toDD(a))) }

//export xprec_cosh
func xprec_cosh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Cosh(toDD(a))) }

//export xprec_tanh
func xprec_tanh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Tanh(toDD(a))) }

//export xprec_asinh
func xprec_asinh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Asinh(toDD(a))) }

//export xprec_acosh
func xprec_acosh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Acosh(toDD(a))) }

//export xprec_atanh
func xprec_atanh(a C.xprec_ddouble) C.xprec_ddouble { return fromDD(xprec.Atanh(toDD(a))) }
