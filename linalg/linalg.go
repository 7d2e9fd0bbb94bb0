// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package linalg registers DDouble's scalar cost profile for consumers of
// gonum.org/v1/gonum/mat, and offers accurate-summation helpers that let a
// plain float64 gonum workflow get a DDouble-accurate dot product or sum
// without ever constructing a DDouble matrix (eigendecomposition and SVD
// of DDouble-valued matrices remain out of scope, matching the scalar
// library's own non-goals).
package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/xprec"
)

// ScalarTraits mirrors Eigen::NumTraits<DDouble>'s declared relative
// costs for the three primitive scalar operations gonum's generic
// algorithms budget around: reading a value, adding two, and multiplying
// two. The absolute numbers are in units of a single float64 read/add/mul
// and come directly from the reference Eigen specialization.
type ScalarTraits struct {
	IsComplex             bool
	IsInteger             bool
	IsSigned              bool
	RequireInitialization bool

	ReadCost int
	AddCost  int
	MulCost  int
}

// DDoubleTraits is the gonum-facing equivalent of the reference library's
// Eigen::NumTraits<DDouble> specialization: DDouble is real, signed,
// non-integer, needs explicit initialization (its zero value is a valid
// zero, but code that assumes zero-cost default construction should not
// assume that holds for arbitrary DDouble-shaped storage), and costs 20x
// a float64 add and 9x a float64 multiply to operate on.
var DDoubleTraits = ScalarTraits{
	IsComplex:             false,
	IsInteger:             false,
	IsSigned:              true,
	RequireInitialization: true,

	ReadCost: 1,
	AddCost:  20,
	MulCost:  9,
}

// AccurateSum returns the sum of v's entries, computed via DDouble-accurate
// summation (Ogita, Rump & Oishi's AccSum) and rounded back to float64.
// Use it wherever a gonum reduction (mat.Sum, a Vector's elements) needs a
// result accurate to near double-double precision without paying for
// DDouble storage throughout the computation.
func AccurateSum(v mat.Vector) float64 {
	n := v.Len()
	p := make([]float64, n)
	for i := 0; i < n; i++ {
		p[i] = v.AtVec(i)
	}
	return xprec.AccSum(p)
}

// AccurateDot returns the dot product of x and y, computed via Ogita,
// Rump & Oishi's compensated Dot2 algorithm (error O(u) instead of O(u*n)
// for a naive accumulation), rounded back to float64.
func AccurateDot(x, y mat.Vector) float64 {
	n := x.Len()
	if y.Len() != n {
		panic("linalg: AccurateDot: vectors must have the same length")
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = x.AtVec(i)
		ys[i] = y.AtVec(i)
	}
	return xprec.Dot2(xs, ys)
}
