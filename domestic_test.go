// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := rand.ExpFloat64()
		if rand.Intn(2) == 0 {
			a = -a
		}
		x, y := Split(a)
		if x+y != a {
			t.Fatalf(`Split(%g)
results sum to       %g
want original value, %g`, a, x+y, a)
		}
		bx := math.Float64bits(x)
		by := math.Float64bits(y)
		// test low 27 bits of significand
		if bx&(1<<27-1) != 0 || by&(1<<27-1) != 0 {
			t.Fatalf(`Split(%g) =
%064b
%064b
want 27 zero bits:
%s%s`, a, bx, by, strings.Repeat(".", 64-27), strings.Repeat("0", 27))
		}
	}
}

func TestNextPowerTwo(t *testing.T) {
	for _, tc := range []struct{ a, np2 float64 }{
		{15, 16},
		{16, 16}, // a power of 2 returns itself
		{17, 32},
		{1, 1},
		{2, 2},
		{0, 0},  // special case 0
		{-1, 1}, // it's next from absolute value
		{-3, 4},
	} {
		if got := nextPowerTwo(tc.a); got != tc.np2 {
			t.Fatalf("nextPowerTwo(%g) = %g, want %g\n", tc.a, got, tc.np2)
		}
	}
}

func TestExtractScalar(t *testing.T) {
	for _, tc := range []struct {
		exp   int
		q, pʹ float64
	}{
		{51, 3, 0.14159265358979312},
		{50, 3.25, -0.10840734641020688},
		{49, 3.125, 0.016592653589793116},
	} {
		σ := math.Ldexp(1, tc.exp) // 2^exp
		gotQ, gotPʹ := extractScalar(σ, math.Pi)
		if gotQ != tc.q || gotPʹ != tc.pʹ {
			t.Fatalf(`extractScalar(2^%d)
results: %g, %g
want:    %g, %g`, tc.exp, gotQ, gotPʹ, tc.q, tc.pʹ)
		}
	}
}

func TestExtractSlice(t *testing.T) {
	p := []float64{1, 22, 333}
	exp := 60
	τGot := extractSlice(math.Ldexp(1, exp), p)
	τWant := 256.
	pWant := []float64{1, 22, 77}
	if τGot != τWant || !reflect.DeepEqual(p, pWant) {
		t.Log("τ:   ", τGot)
		for i, x := range p {
			t.Logf("p[%d]: %.0f\n", i, x)
		}
		t.Fatal("Huh.")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		want bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{0.5, true},
		{1024, true},
		{3, false},
		{-8, true},
		{math.Inf(1), false},
		{math.NaN(), false},
	} {
		if got := isPowerOfTwo(tc.x); got != tc.want {
			t.Errorf("isPowerOfTwo(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestGreaterOrEqualInMagnitude(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		want bool
	}{
		{2, 1, true},
		{1, 2, false},
		{-3, 2, true},
		{0, 0, true},
		{math.Inf(1), 1e300, true},
		{1, math.Inf(1), false},
	} {
		if got := greaterOrEqualInMagnitude(tc.x, tc.y); got != tc.want {
			t.Errorf("greaterOrEqualInMagnitude(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
