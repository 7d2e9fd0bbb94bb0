// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import "math"

// Section: "Accurate Sum and Dot Product", T. Ogita, S. Rump, S. Oishi,
// http://www.ti3.tu-harburg.de/paper/rump/OgRuOi05.pdf
//
// FastTwoSum (1.1)
// TwoSum (3.1)
// Split (3.2)
// TwoProduct (3.3)
//
// These error-free transformations (EFTs) on plain float64 values are used
// by the summation and dot-product code in sumaux.go. DDouble arithmetic
// uses the equivalent ExDouble methods in exdouble.go instead.

// FastTwoSum computes an error-free sum of two float64s, with conditions on
// the relative magnitudes.
//
// Error-free means the result x is the floating-point sum a+b, and y is the
// floating-point error such that x+y exactly equals a+b.
//
// Results are accurate when |b| <= |a|, but are also still accurate as
// long as no trailing nonzero bit of a is smaller than the least significant
// bit of b.
//
// Dekker algorithm, 3 floating point operations.
func FastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	y = a - x + b
	return
}

// TwoSum computes an error-free sum of two float64s.
//
// Knuth algorithm, 6 floating point operations.
//
// Result x is a+b, y is the error such that x+y exactly equals a+b.
func TwoSum(a, b float64) (x, y float64) {
	x = a + b
	z := x - a
	y = a - (x - z) + (b - z)
	return
}

var splitFactor = math.Ldexp(1, 27) + 1

// Split splits a into x, y such that x + y = a and both x and y need at most
// 26 bits in the significand. This is Veltkamp's algorithm.
//
// Requires 4 floating-point operations (multiplication and subtraction.)
func Split(a float64) (x, y float64) {
	c := splitFactor * a
	x = c - (c - a)
	y = a - x
	return
}

// TwoProduct computes an error-free product of two float64s, using a
// fused multiply-add. The library requires a correctly rounded host FMA;
// Go's math.FMA satisfies that on every platform it supports, in software
// if necessary.
//
// Result x is a*b, y is the error such that x+y exactly equals a times b.
//
// 2 floating point operations.
func TwoProduct(a, b float64) (x, y float64) {
	x = a * b
	y = math.FMA(a, b, -x)
	return
}
