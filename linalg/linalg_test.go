// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package linalg_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/xprec/linalg"
)

func TestDDoubleTraitsMatchReferenceCosts(t *testing.T) {
	tr := linalg.DDoubleTraits
	if tr.ReadCost != 1 || tr.AddCost != 20 || tr.MulCost != 9 {
		t.Errorf("DDoubleTraits = %+v, want ReadCost=1 AddCost=20 MulCost=9", tr)
	}
	if !tr.IsSigned || tr.IsComplex || tr.IsInteger || !tr.RequireInitialization {
		t.Errorf("DDoubleTraits flags = %+v, want real signed non-integer needing init", tr)
	}
}

func TestAccurateSumMatchesPlainSumOnWellScaledInput(t *testing.T) {
	v := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	got := linalg.AccurateSum(v)
	if math.Abs(got-10) > 1e-12 {
		t.Errorf("AccurateSum = %v, want 10", got)
	}
}

func TestAccurateDotOrthogonalVectorsIsZero(t *testing.T) {
	x := mat.NewVecDense(2, []float64{1, 0})
	y := mat.NewVecDense(2, []float64{0, 1})
	got := linalg.AccurateDot(x, y)
	if got != 0 {
		t.Errorf("AccurateDot(orthogonal) = %v, want 0", got)
	}
}

func TestAccurateDotPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched vector lengths")
		}
	}()
	linalg.AccurateDot(mat.NewVecDense(2, nil), mat.NewVecDense(3, nil))
}
