// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r3

import "gonum.org/v1/gonum/mat"

// Mat represents a 3×3 matrix, row-major. It satisfies gonum.org/v1/
// gonum/mat.Matrix so it can be passed to the rest of the gonum
// ecosystem (printing, norms, decompositions) without copying, the same
// role spatial/r3.Mat plays for gonum itself. Xform's rotation component
// is stored as a *Mat.
type Mat struct {
	data [9]float64
}

var _ mat.Matrix = (*Mat)(nil)

// NewMat returns a new 3×3 matrix populated from val in row-major order.
// NewMat panics if val is non-nil and len(val) != 9.
func NewMat(val []float64) *Mat {
	m := &Mat{}
	if val == nil {
		return m
	}
	if len(val) != 9 {
		panic(mat.ErrShape)
	}
	copy(m.data[:], val)
	return m
}

// Identity returns the 3×3 identity matrix.
func Identity() *Mat {
	return NewMat([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Dims returns 3, 3: the shape of every Mat.
func (m *Mat) Dims() (r, c int) { return 3, 3 }

// At returns the value at row i, column j.
func (m *Mat) At(i, j int) float64 {
	if uint(i) > 2 {
		panic(mat.ErrRowAccess)
	}
	if uint(j) > 2 {
		panic(mat.ErrColAccess)
	}
	return m.data[i*3+j]
}

// Set sets the value at row i, column j.
func (m *Mat) Set(i, j int, v float64) {
	if uint(i) > 2 {
		panic(mat.ErrRowAccess)
	}
	if uint(j) > 2 {
		panic(mat.ErrColAccess)
	}
	m.data[i*3+j] = v
}

// T returns the transpose of m. Changes to the receiver are reflected in
// the returned matrix.
func (m *Mat) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// MulVec returns the matrix-vector product M·v.
func (m *Mat) MulVec(v Vec) Vec {
	return Vec{
		X: v.X*m.At(0, 0) + v.Y*m.At(0, 1) + v.Z*m.At(0, 2),
		Y: v.X*m.At(1, 0) + v.Y*m.At(1, 1) + v.Z*m.At(1, 2),
		Z: v.X*m.At(2, 0) + v.Y*m.At(2, 1) + v.Z*m.At(2, 2),
	}
}

// Raw returns the row-major backing array of m. The returned slice
// aliases m's storage.
func (m *Mat) Raw() []float64 { return m.data[:] }
