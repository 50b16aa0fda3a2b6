// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quat provides the float64 quaternion arithmetic this module's
// rotation representation is built on. It is a trimmed and extended copy
// of gonum.org/v1/gonum/num/quat: the string Format/Parse machinery that
// package carries is dropped (this module never round-trips a quaternion
// through text), and Conj/Abs/Inv/Normalize are added because the xform
// package's matrix<->quaternion conversion needs them and gonum's own
// num/quat package does not export them.
package quat

import "math"

// Number is a float64 precision quaternion.
type Number struct {
	Real, Imag, Jmag, Kmag float64
}

// Add returns the sum of x and y.
func Add(x, y Number) Number {
	return Number{
		Real: x.Real + y.Real,
		Imag: x.Imag + y.Imag,
		Jmag: x.Jmag + y.Jmag,
		Kmag: x.Kmag + y.Kmag,
	}
}

// Sub returns the difference of x and y, x-y.
func Sub(x, y Number) Number {
	return Number{
		Real: x.Real - y.Real,
		Imag: x.Imag - y.Imag,
		Jmag: x.Jmag - y.Jmag,
		Kmag: x.Kmag - y.Kmag,
	}
}

// Mul returns the Hamiltonian product of x and y.
func Mul(x, y Number) Number {
	return Number{
		Real: x.Real*y.Real - x.Imag*y.Imag - x.Jmag*y.Jmag - x.Kmag*y.Kmag,
		Imag: x.Real*y.Imag + x.Imag*y.Real + x.Jmag*y.Kmag - x.Kmag*y.Jmag,
		Jmag: x.Real*y.Jmag - x.Imag*y.Kmag + x.Jmag*y.Real + x.Kmag*y.Imag,
		Kmag: x.Real*y.Kmag + x.Imag*y.Jmag - x.Jmag*y.Imag + x.Kmag*y.Real,
	}
}

// Scale returns q scaled by f.
func Scale(f float64, q Number) Number {
	return Number{Real: f * q.Real, Imag: f * q.Imag, Jmag: f * q.Jmag, Kmag: f * q.Kmag}
}

// Conj returns the quaternion conjugate of q.
func Conj(q Number) Number {
	return Number{Real: q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// Abs returns the norm of q.
func Abs(q Number) float64 {
	return math.Hypot(math.Hypot(q.Real, q.Imag), math.Hypot(q.Jmag, q.Kmag))
}

// Inv returns the multiplicative inverse of q. For a unit quaternion
// Inv(q) == Conj(q); Inv handles the general (non-unit) case too since
// the BCC-quantized orientation grid does not guarantee exact unit norm.
func Inv(q Number) Number {
	n2 := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
	return Scale(1/n2, Conj(q))
}

// Normalize returns q scaled to unit norm. It fixes the sign so the
// result's Real component is non-negative, folding q into the
// positive-w hemisphere (q and -q represent the same SO(3) rotation).
func Normalize(q Number) Number {
	q = NormalizeUnsigned(q)
	if q.Real < 0 {
		q = Scale(-1, q)
	}
	return q
}

// NormalizeUnsigned returns q scaled to unit norm, preserving whichever
// sign q already carries. Unlike Normalize it does not fold q into the
// positive-w hemisphere; callers that key a quaternion directly into a
// lattice spanning both q and -q (the Quat-BCC7 family) need the sign
// preserved so a lattice point's stored quaternion round-trips to the
// same point instead of its hemisphere-folded mirror.
func NormalizeUnsigned(q Number) Number {
	a := Abs(q)
	if a == 0 {
		return Number{Real: 1}
	}
	return Scale(1/a, q)
}

// Dot returns the Euclidean dot product of x and y treated as vectors
// in R^4.
func Dot(x, y Number) float64 {
	return x.Real*y.Real + x.Imag*y.Imag + x.Jmag*y.Jmag + x.Kmag*y.Kmag
}
