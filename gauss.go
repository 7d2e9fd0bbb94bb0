// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

// GaussChebyshev fills x and w (both of length n) with the nodes and
// weights of the n-point Gauss-Chebyshev quadrature rule on [-1, 1] for
// the weight function 1/sqrt(1-t^2). Nodes are returned in ascending
// order, matching the Legendre solver's use of them as a starting guess.
// It panics if len(x) != n or len(w) != n.
func GaussChebyshev(n int, x, w []DDouble) {
	if len(x) != n || len(w) != n {
		panic("xprec: GaussChebyshev: x and w must have length n")
	}
	if n < 1 {
		return
	}

	fact := Pi.DivFloat(float64(n))
	for i := 0; i < n; i++ {
		angle := fact.MulFloat(float64(n) - float64(i) - 0.5)
		x[i] = Cos(angle)
		w[i] = fact
	}
}

// legDeriv evaluates the degree-N Legendre polynomial and its derivative
// at x via Bonnet's recursion.
func legDeriv(N int, x DDouble) (Pn, dPn DDouble) {
	Pn1 := FromFloat(1.0)
	dPn1 := FromFloat(0.0)
	Pn = x
	dPn = FromFloat(1.0)
	for n := 1; n < N; n++ {
		fn := float64(n)
		pNext := FromFloat(2*fn + 1.0).Mul(x).Mul(Pn).Sub(FromFloat(fn).Mul(Pn1)).DivFloat(fn + 1.0)
		dNext := FromFloat(2*fn + 1.0).Mul(x.Mul(dPn).Add(Pn)).Sub(FromFloat(fn).Mul(dPn1)).DivFloat(fn + 1.0)
		Pn1, Pn = Pn, pNext
		dPn1, dPn = dPn, dNext
	}
	return Pn, dPn
}

// GaussLegendre fills x and w (both of length n) with the nodes and
// weights of the n-point Gauss-Legendre quadrature rule on [-1, 1],
// computed by Newton-refining the Gauss-Chebyshev nodes against the
// Legendre polynomial and its derivative. It panics if len(x) != n or
// len(w) != n.
func GaussLegendre(n int, x, w []DDouble) {
	if len(x) != n || len(w) != n {
		panic("xprec: GaussLegendre: x and w must have length n")
	}
	if n < 1 {
		return
	}

	GaussChebyshev(n, x, w)

	for iter := 0; iter < 10; iter++ {
		converged := true
		for i := 0; i < n; i++ {
			Pn, dPn := legDeriv(n, x[i])
			dx := Pn.Neg().Div(dPn)
			x[i] = x[i].Add(dx)
			w[i] = dPn

			if converged && !greaterOrEqualInMagnitude(2.5e-32, dx.Hi) {
				converged = false
			}
		}
		if converged {
			break
		}
	}

	for i := 0; i < n; i++ {
		w[i] = FromFloat(2.0).Div(FromFloat(1.0).Sub(x[i].Mul(x[i])).Mul(w[i]).Mul(w[i]))
	}
}
