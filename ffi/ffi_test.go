// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package ffi

import (
	"testing"

	"github.com/soniakeys/xprec"
)

// cgo's "C" pseudo-package cannot be imported from _test.go files, so the
// exported xprec_* wrappers are not called here; this test only checks
// that Record holds the same Hi and Lo fields as a DDouble.
func TestRecordMirrorsDDoubleLayout(t *testing.T) {
	d := xprec.DDouble{Hi: 1.5, Lo: 2e-17}
	r := Record{Hi: d.Hi, Lo: d.Lo}
	if r.Hi != d.Hi || r.Lo != d.Lo {
		t.Errorf("Record %+v does not mirror DDouble %+v", r, d)
	}
}
