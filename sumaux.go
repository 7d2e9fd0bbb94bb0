// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

// sumaux.go collects the host-float accurate-summation and accurate-dot-
// product algorithms of Rump, Ogita and Oishi. They do not operate on
// DDouble at all (they predate it, working entirely in float64), but the
// package keeps them because they are the numerical backbone of the
// linalg subpackage's AccurateSum/AccurateDot helpers: accumulating many
// float64 products or summands to faithfully-rounded float64 accuracy is
// materially cheaper than promoting a whole vector to DDouble and back.
//
// Section: "Accurate Sum and Dot Product", T. Ogita, S. Rump, S. Oishi,
// http://www.ti3.tu-harburg.de/paper/rump/OgRuOi05.pdf
//
// Sum2 (4.1, 4.4), vecSum (4.3), SumK (4.8), SumKVert (4.12),
// Dot2 (5.3), Dot2Err (5.8), DotK (5.10), GenDot (6.1)
//
// Section: "Accurate Floating-Point Summation, Part I: Faithful Rounding",
// http://www.ti3.tu-harburg.de/paper/rump/RuOgOi07I.pdf
//
// extractScalar (3.2), extractSlice (3.4), transform (4.1, 4.4), AccSum (4.5)
//
// Section: "Accurate Floating-Point Summation, Part II: Faithful Rounding",
// http://www.ti3.tu-harburg.de/paper/rump/RuOgOi07II.pdf
//
// transform3 (3.3), AccSignBit (4.1), transformK (6.2)

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sum returns a sum of the values in p.
//
// The algorithm is the simple sequential sum: len(p) floating point
// additions.
func Sum(p []float64) (sum float64) {
	for _, x := range p {
		sum += x
	}
	return
}

// KahanSum returns a sum of the values in p.
//
// The algorithm is Kahan (1965), often termed "compensated" summation.
//
// It performs 4 * len(p) floating point operations (additions or
// subtractions.)
func KahanSum(p []float64) float64 {
	var s, c float64
	for _, x := range p {
		y := x - c
		t := s + y
		c = t - s - y
		s = t
	}
	return s
}

// KahanB computes a sum of the values in p.
//
// The algorithm is Kahan-Babuska-Neumaier, sometimes termed a "balancing
// summation."
//
// It performs 7 * len(p) + 1 floating point operations (addition,
// subtraction, Abs, and comparison.)
func KahanB(p []float64) float64 {
	s := p[0]
	c := 0.
	for _, x := range p[1:] {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			c += s - t + x
		} else {
			c += x - t + s
		}
		s = t
	}
	return s + c
}

// PriestSum computes a sum of the values in p.
//
// Algorithm following Matlab code PriestSum.m by S.M. Rump. This is
// Priest's "Doubly compensated summation" on p. 64 of the 1992 paper "On
// properties of floating point arithmetics: Numerical stability."
//
// Time complexity is O(n log n) in len(p).
func PriestSum(p []float64) float64 {
	if len(p) == 0 {
		return 0.
	}
	q := append([]float64{}, p...)
	sort.Sort(priest(q))
	s := q[0]
	c := 0.
	for _, π := range q[1:] {
		y, u := FastTwoSum(c, π)
		t, v := FastTwoSum(s, y)
		z := u + v
		s, c = FastTwoSum(t, z)
	}
	return s
}

// a type for sorting by decreasing magnitude
type priest []float64

func (p priest) Len() int           { return len(p) }
func (p priest) Less(i, j int) bool { return math.Abs(p[i]) > math.Abs(p[j]) }
func (p priest) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Cond computes the condition number of the summation function f over s.
//
// Cond is not destructive on s even if f is destructive on its argument.
func Cond(f func([]float64) float64, s []float64) float64 {
	c := append([]float64{}, s...)
	absSum := math.Abs(f(c))
	for i, x := range s {
		c[i] = math.Abs(x)
	}
	return f(c) / absSum
}

// Sum2 returns a sum of values in p as if computed in twice the precision
// of a float64.
func Sum2(p []float64) float64 {
	if len(p) == 0 {
		return 0.
	}
	s := p[0]
	var e, y float64
	for _, x := range p[1:] {
		s, y = TwoSum(s, x)
		e += y
	}
	return s + e
}

func vecSum(p []float64) {
	if len(p) < 2 {
		return
	}
	s := p[0]
	for i, x := range p[1:] {
		s, p[i] = TwoSum(s, x)
	}
	p[len(p)-1] = s
}

// SumK returns a sum of values in p, as if computed in k-fold precision of
// a float64.
//
// SumK is destructive on values in p.
func SumK(p []float64, K int) float64 {
	for K--; K > 0; K-- {
		vecSum(p)
	}
	return Sum(p)
}

// SumKVert returns a sum of values in p, as if computed in k-fold precision
// of a float64.
//
// SumKVert computes the same result as SumK but leaves values in p
// unmodified.
func SumKVert(p []float64, K int) float64 {
	if len(p) < K {
		K = len(p)
	}
	q := make([]float64, K-1)
	for i, s := range p[:len(q)] {
		for k, qk := range q[:i] {
			q[k], s = TwoSum(qk, s)
		}
		q[i] = s
	}
	s := 0. // Unclear from the paper, but this seems right.
	for _, α := range p[len(q):] {
		for k, qk := range q {
			q[k], α = TwoSum(qk, α)
		}
		s += α
	}
	for j, α := range q[:K-2] {
		for k := j + 1; k < len(q); k++ {
			q[k], α = TwoSum(q[k], α)
		}
		s += α
	}
	return s + q[K-2]
}

// Dot2 returns a dot product of x and y as if computed in twice the
// precision of a float64.
func Dot2(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	q := 0.
	p, s := TwoProduct(x[0], y[0])
	for i := 1; i < len(x); i++ {
		h, r := TwoProduct(x[i], y[i])
		p, q = TwoSum(p, h)
		s += q + r
	}
	return p + s
}

// Dot2Err returns a dot product and a rigorous error bound.
//
// The result dot is the same 2-fold precision result returned by Dot2, the
// result eb is a rigorous error bound.
func Dot2Err(x, y []float64) (dot, eb float64) {
	p, s := TwoProduct(x[0], y[0])
	e := math.Abs(s)
	q := 0.
	for i := 1; i < len(x); i++ {
		h, r := TwoProduct(x[i], y[i])
		p, q = TwoSum(p, h)
		t := q + r
		s += t
		e += math.Abs(t)
	}
	dot = p + s
	n := float64(len(x))
	δ := n * eps / (1 - 2*n*eps)
	α := eps*math.Abs(dot) + (δ*e + 3*etaUnderflow/eps)
	eb = α / (1 - 2*eps)
	return
}

// DotK returns a dot product of x and y as if computed in K times the
// precision of a float64.
func DotK(x, y []float64, K int) float64 {
	r := make([]float64, 2*len(x))
	var p, h float64
	p, r[0] = TwoProduct(x[0], y[0])
	for i := 1; i < len(x); i++ {
		h, r[i] = TwoProduct(x[i], y[i])
		p, r[len(x)+i-1] = TwoSum(p, h)
	}
	r[2*len(x)-1] = p
	return SumK(r, K-1)
}

// GenDot generates vectors x and y ill-conditioned for dot product.
//
// Argument n specifies length of result vectors x and y, argument c
// specifies the approximate condition number for a dot product of x and y.
//
// Result d is a computed dot product that is exact or nearly exact, result
// C is the computed condition number.
//
// GenDot uses the rand package default generator; use rand.Seed as needed
// before calling GenDot.
func GenDot(n int, c float64) (x, y []float64, d, C float64) {
	n2 := (n + 1) / 2
	x = make([]float64, n)
	y = make([]float64, n)

	b := math.Log2(c)
	b2 := b / 2
	e := make([]int, n2)
	last := len(e) - 1
	for i := 1; i < last; i++ {
		e[i] = int(rand.Float64()*b2 + .5)
	}
	e[0] = int(b2+.5) + 1
	e[last] = 0
	for i := 0; i < n2; i++ {
		x[i] = math.Ldexp(rand.Float64()*2-1, e[i])
		y[i] = math.Ldexp(rand.Float64()*2-1, e[i])
	}

	dx := func(x, y []float64) float64 { return DotK(x, y, int(b/20)) }

	f := b2 / float64(n-1-n2)
	for i := n2; i < n; i++ {
		e2 := int(float64(n-1-i)*f + .5)
		x[i] = math.Ldexp(rand.Float64()*2-1, e2)
		y[i] = (math.Ldexp(rand.Float64()*2-1, e2) - dx(x, y)) / x[i]
	}

	for i := n - 1; i >= 1; i-- {
		j := rand.Intn(i + 1)
		x[i], x[j] = x[j], x[i]
		y[i], y[j] = y[j], y[i]
	}

	d = dx(x, y)
	C = Cond(func(p []float64) float64 { return dx(p[:n], p[n:]) }, append(append([]float64{}, x...), y...))
	return
}

// extractScalar splits p relative to σ, which must be an integral power of
// 2.
//
// Return value q is the high order part of p, return value pʹ is the
// remainder such that q+pʹ exactly equals p. 3 floating point operations.
func extractScalar(σ, p float64) (q, pʹ float64) {
	q = σ + p - σ
	pʹ = p - q
	return
}

// extractSlice splits elements of p relative to σ.
//
// As with extractScalar, σ must be an integral power of 2. extractSlice
// calls extractScalar on each element of p. It replaces each element of p
// with the remainder pʹ, and sums all high order parts q to the return
// value τ.
//
// Return value τ plus the sum of the new elements of p will exactly equal
// the sum of the original elements of p.
//
// 4 * len(p) floating point operations.
func extractSlice(σ float64, p []float64) (τ float64) {
	var q float64
	for i, pi := range p {
		q, p[i] = extractScalar(σ, pi)
		τ += q
	}
	return
}

// transform just as needed for AccSum, without bells and whistles.
func transform(p []float64) (τ1, τ2 float64) {
	return transform3(p, 0, φSum)
}

// AccSum returns an accurate sum of values in p.
//
// AccSum is destructive on p.
//
// Result is a faithful rounding of the sum of values in p.
func AccSum(p []float64) float64 {
	τ1, τ2 := transform(p)
	sum := 0.
	for _, pi := range p { // order not important
		sum += pi
	}
	return sum + τ2 + τ1 // order important
}

// suitable values for argument Φ in transform3
func φSum(Ms float64) float64  { return halfEps * Ms * Ms }
func φSign(Ms float64) float64 { return halfEps * Ms }

func transform3(p []float64, ρ float64, Φ func(Ms float64) float64) (τ1, τ2 float64) {
	if len(p) == 0 {
		return
	}
	μ := math.Abs(p[0])
	for _, x := range p[1:] {
		if a := math.Abs(x); a > μ {
			μ = a
		}
	}
	if μ == 0 {
		return
	}
	Ms := nextPowerTwo(float64(len(p) + 2))
	σ := Ms * nextPowerTwo(μ) // "extraction unit"
	if math.IsInf(σ, 0) {
		return σ, σ
	}
	ϕ := Ms * halfEps // "factor to decrease σ"
	_Φ := Φ(Ms)       // "stopping criterion"
	for t := ρ; ; {
		τ := extractSlice(σ, p)
		τ1 = t + τ
		if math.Abs(τ1) >= _Φ*σ || σ <= minNormal {
			τ2 = t - τ1 + τ
			return
		}
		t = τ1
		if t == 0 {
			return transform3(p, 0, Φ)
		}
		σ *= ϕ
	}
}

// AccSignBit returns the sign bit of the sum of values in p, somewhat
// faster than an accurate sum can be computed.
func AccSignBit(p []float64) bool {
	τ1, _ := transform3(p, 0, φSign)
	return math.Signbit(τ1)
}

func transformK(p []float64, ρ float64) (res, R float64) {
	// code similar to AccSum
	τ1, τ2 := transform3(p, ρ, φSum)
	sum := 0.
	for _, pi := range p {
		sum += pi
	}
	res = sum + τ2 + τ1 // same as AccSum result
	R = τ2 - (res - τ1)
	return
}

// AccSumK returns K increasingly precise faithfully-rounded partial sums of
// p, each refining the residual left by the previous one.
func AccSumK(p []float64, K int) []float64 {
	res := make([]float64, K)
	r := 0.
	for k := range res {
		res[k], r = transformK(p, r)
		if res[k] <= minNormal {
			break
		}
	}
	return res
}

// PrecSum returns an accurate sum of values in p.
//
// Result is a faithful rounding of the sum or else has relative error <=
// 2^(-53*k) * Cond(Sum2, p).
func PrecSum(p []float64, K int) float64 {
	switch {
	case len(p) == 0:
		return 0.
	case len(p) > sumMax:
		panic(fmt.Sprintf("len(p) = %d exceeds limit, %d", len(p), sumMax))
	}
	μ := math.Abs(p[0])
	for _, x := range p[1:] {
		if a := math.Abs(x); a > μ {
			μ = a
		}
	}
	μ /= 1 - float64(len(p))*2*eps
	if μ == 0 {
		return 0.
	}
	σ0 := nextPowerTwo(μ)
	if math.IsInf(σ0, 0) {
		return σ0
	}
	Ms := nextPowerTwo(float64(len(p) + 2))
	M := math.Log2(Ms)
	ϕ := Ms * halfEps
	// len(σ) is L in paper and reference code. Also, paper and reference
	// code seem to allocate and then compute an extra σ element that is
	// never used.
	σ := make([]float64,
		int(math.Ceil((float64(K)*math.Log2(halfEps)-2)/(math.Log2(halfEps)+M)))-1)
	for k := 0; ; {
		if σ0 <= minNormal {
			σ = σ[:k]
			break
		}
		σ[k] = σ0
		k++
		if k == len(σ) {
			break
		}
		σ0 *= ϕ
	}
	if len(σ) == 0 {
		sum := 0.
		for _, x := range p {
			sum += x
		}
		return sum
	}
	var q, sum float64
	τ := make([]float64, len(σ))
	for _, π := range p {
		for k, σk := range σ {
			q, π = extractScalar(σk, π)
			τ[k] += q
		}
		sum += π
	}
	π := τ[0]
	e := 0.
	for _, τk := range τ[1:] {
		π, q = FastTwoSum(π, τk)
		e += q
	}
	return sum + e + π
}
