// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec_test

import (
	"math"
	"testing"

	"github.com/soniakeys/xprec"
)

func TestLimitsMaxIsFinite(t *testing.T) {
	if !xprec.IsFinite(xprec.Limits.Max) {
		t.Error("Limits.Max is not finite")
	}
	if xprec.Limits.Max.Hi != math.MaxFloat64 {
		t.Errorf("Limits.Max.Hi = %v, want math.MaxFloat64", xprec.Limits.Max.Hi)
	}
}

func TestLimitsLowestIsNegationOfMax(t *testing.T) {
	sum := xprec.Limits.Max.Add(xprec.Limits.Lowest)
	if sum.Hi != 0 || sum.Lo != 0 {
		t.Errorf("Max + Lowest = %+v, want 0", sum)
	}
}

func TestLimitsInfinityAndNaN(t *testing.T) {
	if !xprec.IsInf(xprec.Limits.Infinity) {
		t.Error("Limits.Infinity is not infinite")
	}
	if !xprec.IsNaN(xprec.Limits.QuietNaN) {
		t.Error("Limits.QuietNaN is not NaN")
	}
	if !xprec.IsNaN(xprec.Limits.SignalingNaN) {
		t.Error("Limits.SignalingNaN is not NaN")
	}
}

func TestLimitsEpsilonIsPositiveAndTiny(t *testing.T) {
	if xprec.Limits.Epsilon.Hi <= 0 {
		t.Errorf("Limits.Epsilon.Hi = %v, want > 0", xprec.Limits.Epsilon.Hi)
	}
	if xprec.Limits.Epsilon.Hi >= 1e-30 {
		t.Errorf("Limits.Epsilon.Hi = %v, want much smaller than a float64 epsilon", xprec.Limits.Epsilon.Hi)
	}
}

func TestLimitsMinIsNormal(t *testing.T) {
	if !xprec.IsNormal(xprec.Limits.Min) {
		t.Errorf("Limits.Min = %v, want normal", xprec.Limits.Min)
	}
}

func TestLimitsDenormMinIsTiny(t *testing.T) {
	if xprec.Limits.DenormMin.Hi <= 0 {
		t.Errorf("Limits.DenormMin.Hi = %v, want > 0", xprec.Limits.DenormMin.Hi)
	}
	if xprec.Limits.DenormMin.Hi >= math.SmallestNonzeroFloat64*2 {
		t.Errorf("Limits.DenormMin.Hi = %v, want close to the smallest float64", xprec.Limits.DenormMin.Hi)
	}
}
