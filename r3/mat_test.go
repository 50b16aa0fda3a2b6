// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r3

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMatIdentity(t *testing.T) {
	t.Parallel()
	m := Identity()
	v := Vec{1, 2, 3}
	if got := m.MulVec(v); got != v {
		t.Errorf("Identity().MulVec(%v) = %v, want %v", v, got, v)
	}
}

func TestMatDims(t *testing.T) {
	t.Parallel()
	var _ mat.Matrix = Identity()
	r, c := Identity().Dims()
	if r != 3 || c != 3 {
		t.Errorf("Dims() = %d, %d, want 3, 3", r, c)
	}
}

func TestMatSetAt(t *testing.T) {
	t.Parallel()
	m := NewMat(nil)
	m.Set(1, 2, 5)
	if got := m.At(1, 2); got != 5 {
		t.Errorf("At(1, 2) = %v, want 5", got)
	}
}

func TestMatAtPanicsOutOfRange(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Errorf("At(3, 0) did not panic")
		}
	}()
	Identity().At(3, 0)
}

func TestNewMatPanicsOnBadShape(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Errorf("NewMat with wrong length did not panic")
		}
	}()
	NewMat([]float64{1, 2, 3})
}
