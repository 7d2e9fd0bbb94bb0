// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package xprec implements double-double extended precision arithmetic.
//
// A DDouble represents a real number as the unevaluated sum of two float64
// values, hi and lo, with |lo| <= ulp(hi)/2. Arithmetic on DDouble values is
// built from the error-free transformations (EFTs) described in "Accurate
// Sum and Dot Product" by T. Ogita, S. Rump and S. Oishi, and from the
// algorithms in "Tight and rigorous error bounds for basic building blocks
// of double-word arithmetic" by M. Joldes, J.-M. Muller and V. Popescu
// (ACM TOMS 44, 2018). Elementary functions, Gauss-Legendre/Chebyshev
// quadrature and the other components follow the corresponding C++ library,
// libxprec, by M. Wallerberger and others.
//
//	http://www.ti3.tu-harburg.de/paper/rump/OgRuOi05.pdf
//	https://doi.org/10.1145/3121432
package xprec
