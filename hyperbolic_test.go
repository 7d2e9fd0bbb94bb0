// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec_test

import (
	"math"
	"testing"

	"github.com/soniakeys/xprec"
)

func TestCoshSquaredMinusSinhSquared(t *testing.T) {
	x := xprec.FromFloat(2.5)
	c := xprec.Cosh(x)
	s := xprec.Sinh(x)
	diff := c.Mul(c).Sub(s.Mul(s))
	if d := diff.Float64() - 1; math.Abs(d) > 1e-27 {
		t.Errorf("cosh^2-sinh^2 = %v, want 1 (diff %v)", diff, d)
	}
}

func TestSinhSmallMatchesKernelRegime(t *testing.T) {
	x := xprec.FromFloat(0.05)
	got := xprec.Sinh(x)
	want := xprec.FromFloat(math.Sinh(0.05))
	if d := got.Sub(want).Float64(); math.Abs(d) > 1e-14 {
		t.Errorf("Sinh(0.05) = %v, want close to %v", got, want)
	}
}

func TestTanhAsymptote(t *testing.T) {
	got := xprec.Tanh(xprec.FromFloat(50))
	if d := got.Float64() - 1; math.Abs(d) > 1e-28 {
		t.Errorf("Tanh(50) = %v, want 1", got)
	}
	got = xprec.Tanh(xprec.FromFloat(-50))
	if d := got.Float64() + 1; math.Abs(d) > 1e-28 {
		t.Errorf("Tanh(-50) = %v, want -1", got)
	}
}

func TestAcoshDomain(t *testing.T) {
	got := xprec.Acosh(xprec.FromFloat(0.5))
	if !xprec.IsNaN(got) {
		t.Errorf("Acosh(0.5) = %v, want NaN", got)
	}
}

func TestAcoshCoshRoundTrip(t *testing.T) {
	x := xprec.FromFloat(3.0)
	got := xprec.Acosh(xprec.Cosh(x))
	if d := got.Sub(x).Float64(); math.Abs(d) > 1e-27 {
		t.Errorf("Acosh(Cosh(3)) = %v, want 3 (diff %v)", got, d)
	}
}

func TestAsinhSinhRoundTrip(t *testing.T) {
	x := xprec.FromFloat(-0.7)
	got := xprec.Asinh(xprec.Sinh(x))
	if d := got.Sub(x).Float64(); math.Abs(d) > 1e-27 {
		t.Errorf("Asinh(Sinh(-0.7)) = %v, want -0.7 (diff %v)", got, d)
	}
}

func TestAtanhDomainAndSymmetry(t *testing.T) {
	got := xprec.Atanh(xprec.FromFloat(2))
	if !xprec.IsNaN(got) {
		t.Errorf("Atanh(2) = %v, want NaN", got)
	}
	pos := xprec.Atanh(xprec.FromFloat(0.3))
	neg := xprec.Atanh(xprec.FromFloat(-0.3))
	if d := pos.Add(neg).Float64(); math.Abs(d) > 1e-28 {
		t.Errorf("Atanh(0.3)+Atanh(-0.3) = %v, want 0", d)
	}
}

func TestAtanhOne(t *testing.T) {
	got := xprec.Atanh(xprec.FromFloat(1))
	if !xprec.IsInf(got) {
		t.Errorf("Atanh(1) = %v, want +Inf", got)
	}
}
