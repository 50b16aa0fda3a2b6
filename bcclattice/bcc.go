// Package bcclattice implements the N-dimensional body-centered-cubic
// (BCC) lattice from spec.md §4.2: an axis-aligned box subdivided into
// two interleaved sublattices (the integer "even" corners and the
// half-shifted "odd" body centers), the densest quantizer the XformHash
// variants use for both Cartesian translation and folded-orientation
// parameters.
//
// The flat packing in Flat/Unflat follows aclivo-lattice's Addr: each
// axis gets the minimum number of bits that can hold its index range,
// values are packed low-axis-first, and a single extra bit (the parity)
// sits at the bottom. Unlike Addr this module also needs the inverse
// geometric map (Center) and the even/odd nearest-lattice-point search
// (Indices), neither of which a prepackaged dependency in the retrieval
// pack provides (see DESIGN.md's standard-library justification).
package bcclattice

import (
	"fmt"
	"math"
	"math/bits"
)

// Lattice is a body-centered-cubic grid over an axis-aligned box in
// R^N, N == len(nside).
type Lattice struct {
	nside   []int
	lb, ub  []float64
	width   []float64
	axBits  []uint
	offsets []uint // cumulative bit offset of each axis field, after the 1-bit parity
}

// New builds a Lattice with nside[i] cells along axis i, over the box
// [lb[i], ub[i]]. New panics if the slices' lengths disagree.
func New(nside []int, lb, ub []float64) *Lattice {
	n := len(nside)
	if len(lb) != n || len(ub) != n {
		panic(fmt.Sprintf("bcclattice: dimension mismatch: nside=%d lb=%d ub=%d", n, len(lb), len(ub)))
	}
	g := &Lattice{
		nside:   append([]int(nil), nside...),
		lb:      append([]float64(nil), lb...),
		ub:      append([]float64(nil), ub...),
		width:   make([]float64, n),
		axBits:  make([]uint, n),
		offsets: make([]uint, n),
	}
	var off uint = 1 // bit 0 is the parity bit
	for i := 0; i < n; i++ {
		g.width[i] = (ub[i] - lb[i]) / float64(nside[i])
		g.axBits[i] = bitsFor(nside[i])
		g.offsets[i] = off
		off += g.axBits[i]
	}
	return g
}

func bitsFor(nside int) uint {
	if nside <= 1 {
		return 0
	}
	return uint(bits.Len(uint(nside - 1)))
}

// Dim returns the lattice's dimensionality.
func (g *Lattice) Dim() int { return len(g.nside) }

// NSide returns the number of cells along axis i.
func (g *Lattice) NSide(i int) int { return g.nside[i] }

// Width returns the cell width along axis i.
func (g *Lattice) Width(i int) float64 { return g.width[i] }

// Size returns the total number of lattice points (both sublattices).
func (g *Lattice) Size() uint64 {
	size := uint64(1)
	for _, n := range g.nside {
		size *= uint64(n)
	}
	return size * 2
}

// Indices returns the index vector and parity of the lattice point
// nearest point. Points outside the box are clamped to the nearest
// boundary index.
func (g *Lattice) Indices(point []float64) (idx []uint64, odd bool) {
	n := g.Dim()
	u := make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = (point[i]-g.lb[i])/g.width[i] - 0.5
	}

	evenIdx := make([]int64, n)
	oddIdx := make([]int64, n)
	for i := 0; i < n; i++ {
		evenIdx[i] = int64(math.Round(u[i]))
		oddIdx[i] = int64(math.Floor(u[i]))
	}
	evenIdx = g.clamp(evenIdx)
	oddIdx = g.clamp(oddIdx)

	evenCenter := g.center(evenIdx, false)
	oddCenter := g.center(oddIdx, true)

	if sqDist(point, evenCenter) <= sqDist(point, oddCenter) {
		return toU64(evenIdx), false
	}
	return toU64(oddIdx), true
}

// Center returns the lattice point at index/parity.
func (g *Lattice) Center(idx []uint64, odd bool) []float64 {
	return g.center(toI64(idx), odd)
}

func (g *Lattice) center(idx []int64, odd bool) []float64 {
	n := g.Dim()
	p := make([]float64, n)
	half := 0.0
	if odd {
		half = 0.5
	}
	for i := 0; i < n; i++ {
		p[i] = g.lb[i] + g.width[i]*(float64(idx[i])+0.5+half)
	}
	return p
}

func (g *Lattice) clamp(idx []int64) []int64 {
	out := make([]int64, len(idx))
	for i, v := range idx {
		max := int64(g.nside[i]) - 1
		switch {
		case v < 0:
			out[i] = 0
		case v > max:
			out[i] = max
		default:
			out[i] = v
		}
	}
	return out
}

// FlatBits returns the total number of low bits Flat ever sets: 1
// parity bit plus each axis's field width. Callers that embed a Flat
// key inside a wider packed value (xformhash's bt24-BCC3 variant does,
// next to a separate cell-index field) use this to pick a
// non-overlapping shift.
func (g *Lattice) FlatBits() uint {
	bits := uint(1)
	for _, b := range g.axBits {
		bits += b
	}
	return bits
}

// Flat packs an index vector and parity into a single 64-bit value:
// parity in bit 0, then each axis's index in consecutive bits, lowest
// axis first, each field exactly wide enough for that axis's nside.
func (g *Lattice) Flat(idx []uint64, odd bool) uint64 {
	var key uint64
	if odd {
		key = 1
	}
	for i, v := range idx {
		key |= v << g.offsets[i]
	}
	return key
}

// Unflat is the inverse of Flat.
func (g *Lattice) Unflat(key uint64) (idx []uint64, odd bool) {
	odd = key&1 != 0
	idx = make([]uint64, g.Dim())
	for i := range idx {
		mask := uint64(1)<<g.axBits[i] - 1
		idx[i] = (key >> g.offsets[i]) & mask
	}
	return idx, odd
}

// Key is the composition Flat(Indices(point)).
func (g *Lattice) Key(point []float64) uint64 {
	idx, odd := g.Indices(point)
	return g.Flat(idx, odd)
}

// Point is the composition Center(Unflat(key)).
func (g *Lattice) Point(key uint64) []float64 {
	idx, odd := g.Unflat(key)
	return g.Center(idx, odd)
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func toU64(v []int64) []uint64 {
	out := make([]uint64, len(v))
	for i, x := range v {
		out[i] = uint64(x)
	}
	return out
}

func toI64(v []uint64) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}
