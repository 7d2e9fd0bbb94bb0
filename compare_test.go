// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec_test

import (
	"math"
	"testing"

	"github.com/soniakeys/xprec"
)

func TestOrderingConsistentWithHi(t *testing.T) {
	a := xprec.FromFloat(1)
	b := xprec.FromFloat(2)
	if !xprec.Less(a, b) || xprec.Less(b, a) {
		t.Errorf("Less(1,2)/Less(2,1) inconsistent")
	}
	if !xprec.Greater(b, a) {
		t.Errorf("Greater(2,1) = false, want true")
	}
}

func TestOrderingBreaksTiesOnLo(t *testing.T) {
	a := xprec.NewDDouble(1.0, 1e-20)
	b := xprec.NewDDouble(1.0, 2e-20)
	if !xprec.Less(a, b) {
		t.Errorf("Less should break tie on Lo")
	}
}

func TestIsFiniteInfNaN(t *testing.T) {
	if xprec.IsFinite(xprec.FromFloat(math.Inf(1))) {
		t.Error("IsFinite(Inf) = true, want false")
	}
	if xprec.IsFinite(xprec.Limits.QuietNaN) {
		t.Error("IsFinite(NaN) = true, want false")
	}
	if !xprec.IsFinite(xprec.FromFloat(1)) {
		t.Error("IsFinite(1) = false, want true")
	}
}

func TestIsZero(t *testing.T) {
	if !xprec.IsZero(xprec.FromFloat(0)) {
		t.Error("IsZero(0) = false, want true")
	}
	if xprec.IsZero(xprec.FromFloat(1e-300)) {
		t.Error("IsZero(1e-300) = true, want false")
	}
}

func TestIsNormal(t *testing.T) {
	if !xprec.IsNormal(xprec.FromFloat(1.0)) {
		t.Error("IsNormal(1.0) = false, want true")
	}
	if xprec.IsNormal(xprec.FromFloat(0)) {
		t.Error("IsNormal(0) = true, want false")
	}
}

func TestFpclassify(t *testing.T) {
	cases := []struct {
		x    xprec.DDouble
		want string
	}{
		{xprec.Limits.QuietNaN, "NaN"},
		{xprec.FromFloat(math.Inf(-1)), "Inf"},
		{xprec.FromFloat(0), "Zero"},
		{xprec.FromFloat(1.0), "Normal"},
	}
	for _, c := range cases {
		if got := xprec.Fpclassify(c.x); got != c.want {
			t.Errorf("Fpclassify(%v) = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestFminFmaxNaNHandling(t *testing.T) {
	n := xprec.Limits.QuietNaN
	x := xprec.FromFloat(5)
	if got := xprec.Fmin(n, x); got != x {
		t.Errorf("Fmin(NaN,5) = %v, want 5", got)
	}
	if got := xprec.Fmax(x, n); got != x {
		t.Errorf("Fmax(5,NaN) = %v, want 5", got)
	}
}

func TestSignbitAndCopysign(t *testing.T) {
	neg := xprec.FromFloat(-3)
	if !xprec.Signbit(neg) {
		t.Error("Signbit(-3) = false, want true")
	}
	got := xprec.Copysign(xprec.FromFloat(5), -1)
	if got.Float64() != -5 {
		t.Errorf("Copysign(5,-1) = %v, want -5", got.Float64())
	}
}

func TestSwap(t *testing.T) {
	a := xprec.FromFloat(1)
	b := xprec.FromFloat(2)
	xprec.Swap(&a, &b)
	if a.Float64() != 2 || b.Float64() != 1 {
		t.Errorf("Swap: a=%v b=%v, want a=2 b=1", a, b)
	}
}
