// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quat

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

var arithTests = []struct {
	x, y Number
	f    float64

	wantAdd   Number
	wantSub   Number
	wantMul   Number
	wantScale Number
}{
	{
		x: Number{1, 1, 1, 1}, y: Number{1, 1, 1, 1},
		f: 2,

		wantAdd:   Number{2, 2, 2, 2},
		wantSub:   Number{0, 0, 0, 0},
		wantMul:   Number{-2, 2, 2, 2},
		wantScale: Number{2, 2, 2, 2},
	},
	{
		x: Number{1, 2, 3, 4}, y: Number{4, -3, 2, -1},
		f: 2,

		wantAdd:   Number{5, -1, 5, 3},
		wantSub:   Number{-3, 5, 1, 5},
		wantMul:   Number{8, -6, 4, 28},
		wantScale: Number{2, 4, 6, 8},
	},
}

func TestArith(t *testing.T) {
	t.Parallel()
	for _, test := range arithTests {
		if got := Add(test.x, test.y); got != test.wantAdd {
			t.Errorf("unexpected result for Add(%v, %v): got:%v want:%v", test.x, test.y, got, test.wantAdd)
		}
		if got := Sub(test.x, test.y); got != test.wantSub {
			t.Errorf("unexpected result for Sub(%v, %v): got:%v want:%v", test.x, test.y, got, test.wantSub)
		}
		if got := Mul(test.x, test.y); got != test.wantMul {
			t.Errorf("unexpected result for Mul(%v, %v): got:%v want:%v", test.x, test.y, got, test.wantMul)
		}
		if got := Scale(test.f, test.x); got != test.wantScale {
			t.Errorf("unexpected result for Scale(%v, %v): got:%v want:%v", test.f, test.x, got, test.wantScale)
		}
	}
}

func TestConjInv(t *testing.T) {
	t.Parallel()
	q := Number{1, 2, 3, 4}
	c := Conj(q)
	want := Number{1, -2, -3, -4}
	if c != want {
		t.Errorf("unexpected result for Conj(%v): got:%v want:%v", q, c, want)
	}

	// q * q^-1 == 1 for any nonzero q.
	prod := Mul(q, Inv(q))
	if !floats.EqualWithinAbsOrRel(prod.Real, 1, 1e-12, 1e-12) ||
		!floats.EqualWithinAbs(prod.Imag, 0, 1e-12) ||
		!floats.EqualWithinAbs(prod.Jmag, 0, 1e-12) ||
		!floats.EqualWithinAbs(prod.Kmag, 0, 1e-12) {
		t.Errorf("Mul(q, Inv(q)) = %v, want identity", prod)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	for _, q := range []Number{
		{1, 2, 3, 4},
		{-1, 0, 0, 0},
		{0, 0, 0, -5},
	} {
		n := Normalize(q)
		if !floats.EqualWithinAbsOrRel(Abs(n), 1, 1e-12, 1e-12) {
			t.Errorf("Normalize(%v) = %v, want unit norm, got norm %v", q, n, Abs(n))
		}
		if n.Real < 0 {
			t.Errorf("Normalize(%v) = %v, want non-negative Real (positive hemisphere)", q, n)
		}
	}
}

func TestDot(t *testing.T) {
	t.Parallel()
	a := Number{1, 0, 0, 0}
	b := Number{0, 1, 0, 0}
	if got := Dot(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("Dot(a, a) = %v, want 1", got)
	}
	if got := Dot(a, b); math.Abs(got) > 1e-12 {
		t.Errorf("Dot(a, b) = %v, want 0", got)
	}
}
