// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package xprec_test

import (
	"testing"

	"github.com/soniakeys/xprec"
)

// fixedSource returns a canned sequence of words, cycling once exhausted.
type fixedSource struct {
	words []uint64
	i     int
}

func (s *fixedSource) Uint64() uint64 {
	w := s.words[s.i%len(s.words)]
	s.i++
	return w
}

func TestUniformSampleWithinBounds(t *testing.T) {
	src := &fixedSource{words: []uint64{0x123456789abcdef0, 0xfedcba9876543210, 0x1, 0xffffffffffffffff}}
	a := xprec.FromFloat(-2)
	b := xprec.FromFloat(5)

	for i := 0; i < 4; i++ {
		got := xprec.UniformSample(src, a, b)
		if xprec.Less(got, a) || xprec.GreaterEqual(got, b) {
			t.Errorf("UniformSample(%d) = %v, want in [%v, %v)", i, got, a, b)
		}
	}
}

func TestUniformSampleAllZerosIsLowerBound(t *testing.T) {
	src := &fixedSource{words: []uint64{0, 0, 0, 0}}
	a := xprec.FromFloat(1)
	b := xprec.FromFloat(9)
	got := xprec.UniformSample(src, a, b)
	if !xprec.Equal(got, a) {
		t.Errorf("UniformSample with all-zero words = %v, want %v", got, a)
	}
}
