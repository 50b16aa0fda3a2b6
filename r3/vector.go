// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package r3 provides the 3D vector, 3×3 matrix, and bounding-box types
// this module's Xform is built from. It is a trimmed and re-settled copy
// of gonum.org/v1/gonum/spatial/r3 (whose own vector.go, box.go, and
// mat.go in the retrieval pack disagree on whether Vec is a [3]float64 or
// a struct{X, Y, Z float64} — two historical revisions of the same
// package were both retrieved). This module settles on the struct form,
// since that is the form spatial/r3's own Box, Mat, and Rotation types in
// the retrieved pack are written against.
package r3

import "math"

// Vec is a 3D vector.
type Vec struct {
	X, Y, Z float64
}

// Add returns the vector sum of p and q.
func Add(p, q Vec) Vec {
	return Vec{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the vector difference of p and q.
func Sub(p, q Vec) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns the vector p scaled by f.
func Scale(f float64, p Vec) Vec {
	return Vec{X: f * p.X, Y: f * p.Y, Z: f * p.Z}
}

// Dot returns the dot product of p and q.
func Dot(p, q Vec) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Norm returns the Euclidean length of p.
func Norm(p Vec) float64 {
	return math.Sqrt(Dot(p, p))
}

// minElem returns the element-wise minimum of p and q.
func minElem(p, q Vec) Vec {
	return Vec{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y), Z: math.Min(p.Z, q.Z)}
}

// maxElem returns the element-wise maximum of p and q.
func maxElem(p, q Vec) Vec {
	return Vec{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y), Z: math.Max(p.Z, q.Z)}
}
