// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec_test

import (
	"math"
	"testing"

	"github.com/soniakeys/xprec"
)

func TestLdexpScalesBothLimbs(t *testing.T) {
	x := xprec.NewDDouble(1.0, 1e-20)
	got := xprec.Ldexp(x, 4)
	if got.Hi != 16.0 || got.Lo != 16e-20 {
		t.Errorf("Ldexp(x,4) = %+v, want {16 16e-20}", got)
	}
}

func TestScalbnIsLdexp(t *testing.T) {
	x := xprec.FromFloat(3)
	if xprec.Scalbn(x, 2) != xprec.Ldexp(x, 2) {
		t.Error("Scalbn should match Ldexp")
	}
}

func TestCeilFloorTrunc(t *testing.T) {
	x := xprec.FromFloat(2.5)
	if got := xprec.Ceil(x).Float64(); got != 3 {
		t.Errorf("Ceil(2.5) = %v, want 3", got)
	}
	if got := xprec.Floor(x).Float64(); got != 2 {
		t.Errorf("Floor(2.5) = %v, want 2", got)
	}
	if got := xprec.Trunc(x).Float64(); got != 2 {
		t.Errorf("Trunc(2.5) = %v, want 2", got)
	}

	neg := xprec.FromFloat(-2.5)
	if got := xprec.Trunc(neg).Float64(); got != -2 {
		t.Errorf("Trunc(-2.5) = %v, want -2", got)
	}
}

func TestRoundAwayFromZero(t *testing.T) {
	if got := xprec.Round(xprec.FromFloat(2.5)).Float64(); got != 3 {
		t.Errorf("Round(2.5) = %v, want 3", got)
	}
	if got := xprec.Round(xprec.FromFloat(-2.5)).Float64(); got != -3 {
		t.Errorf("Round(-2.5) = %v, want -3", got)
	}
}

func TestRoundingIsIdempotent(t *testing.T) {
	x := xprec.FromFloat(7.0)
	fns := []func(xprec.DDouble) xprec.DDouble{xprec.Ceil, xprec.Floor, xprec.Trunc, xprec.Round}
	for _, f := range fns {
		once := f(x)
		twice := f(once)
		if once != twice {
			t.Errorf("rounding not idempotent: f(x)=%v, f(f(x))=%v", once, twice)
		}
	}
}

func TestModfSplitsIntegerAndFraction(t *testing.T) {
	ip, fp := xprec.Modf(xprec.FromFloat(3.25))
	if ip.Float64() != 3 {
		t.Errorf("Modf intpart = %v, want 3", ip.Float64())
	}
	if d := fp.Float64() - 0.25; math.Abs(d) > 1e-28 {
		t.Errorf("Modf fracpart = %v, want 0.25", fp.Float64())
	}
}

func TestNextafterMovesTowardTarget(t *testing.T) {
	x := xprec.FromFloat(1.0)
	y := xprec.FromFloat(2.0)
	got := xprec.Nextafter(x, y)
	if !xprec.Greater(got, x) {
		t.Errorf("Nextafter(1,2) = %v, want > 1", got)
	}
}

func TestNextafterEqualReturnsSameValue(t *testing.T) {
	x := xprec.FromFloat(1.0)
	if got := xprec.Nextafter(x, x); got != x {
		t.Errorf("Nextafter(x,x) = %v, want %v", got, x)
	}
}
