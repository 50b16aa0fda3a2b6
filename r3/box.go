// Copyright ©2022 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r3

// Box is an axis-aligned 3D bounding box. A well-formed Box has Min
// components smaller than its Max components.
type Box struct {
	Min, Max Vec
}

// NewCubeBox returns a Box centered on the origin with half-side bound,
// the shape cart_bound describes in the resolution spec.
func NewCubeBox(bound float64) Box {
	return Box{
		Min: Vec{X: -bound, Y: -bound, Z: -bound},
		Max: Vec{X: bound, Y: bound, Z: bound},
	}
}

// Size returns the Box's extent along each axis.
func (a Box) Size() Vec {
	return Sub(a.Max, a.Min)
}

// Contains reports whether v lies within the closed bounds of the Box.
func (a Box) Contains(v Vec) bool {
	return a.Min.X <= v.X && v.X <= a.Max.X &&
		a.Min.Y <= v.Y && v.Y <= a.Max.Y &&
		a.Min.Z <= v.Z && v.Z <= a.Max.Z
}

// Clamp returns v with each component clamped to the Box's bounds.
func (a Box) Clamp(v Vec) Vec {
	return minElem(a.Max, maxElem(a.Min, v))
}
