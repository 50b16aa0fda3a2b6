// Package cubiclattice implements the plain N-dimensional cubic lattice
// from spec.md §4.3: the same axis-aligned-box quantizer as
// bcclattice, minus the second (odd/body-centered) sublattice. It backs
// the Quatgrid-Cubic and bt24-Cubic-Zorder variants, which quantize
// Cartesian translation on a simple grid rather than a BCC one.
//
// The type mirrors bcclattice.Lattice's shape deliberately: same
// constructor signature, same Flat/Unflat packing convention, just one
// sublattice instead of two and therefore no parity bit.
package cubiclattice

import (
	"fmt"
	"math"
	"math/bits"
)

// Lattice is a simple cubic grid over an axis-aligned box in R^N.
type Lattice struct {
	nside   []int
	lb, ub  []float64
	width   []float64
	axBits  []uint
	offsets []uint
}

// New builds a Lattice with nside[i] cells along axis i, over the box
// [lb[i], ub[i]].
func New(nside []int, lb, ub []float64) *Lattice {
	n := len(nside)
	if len(lb) != n || len(ub) != n {
		panic(fmt.Sprintf("cubiclattice: dimension mismatch: nside=%d lb=%d ub=%d", n, len(lb), len(ub)))
	}
	g := &Lattice{
		nside:   append([]int(nil), nside...),
		lb:      append([]float64(nil), lb...),
		ub:      append([]float64(nil), ub...),
		width:   make([]float64, n),
		axBits:  make([]uint, n),
		offsets: make([]uint, n),
	}
	var off uint
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

// Size returns the total number of lattice points.
func (g *Lattice) Size() uint64 {
	size := uint64(1)
	for _, n := range g.nside {
		size *= uint64(n)
	}
	return size
}

// Indices returns the index of the cell containing point, clamped to
// the box's boundary cells for out-of-range points.
func (g *Lattice) Indices(point []float64) []uint64 {
	idx := make([]uint64, g.Dim())
	for i := range idx {
		u := int64(math.Floor((point[i] - g.lb[i]) / g.width[i]))
		max := int64(g.nside[i]) - 1
		switch {
		case u < 0:
			u = 0
		case u > max:
			u = max
		}
		idx[i] = uint64(u)
	}
	return idx
}

// Center returns the center point of cell idx.
func (g *Lattice) Center(idx []uint64) []float64 {
	p := make([]float64, g.Dim())
	for i := range p {
		p[i] = g.lb[i] + g.width[i]*(float64(idx[i])+0.5)
	}
	return p
}

// Flat packs an index vector into a single value, lowest axis first,
// each field exactly wide enough for that axis's nside.
func (g *Lattice) Flat(idx []uint64) uint64 {
	var key uint64
	for i, v := range idx {
		key |= v << g.offsets[i]
	}
	return key
}

// Unflat is the inverse of Flat.
func (g *Lattice) Unflat(key uint64) []uint64 {
	idx := make([]uint64, g.Dim())
	for i := range idx {
		mask := uint64(1)<<g.axBits[i] - 1
		idx[i] = (key >> g.offsets[i]) & mask
	}
	return idx
}

// Key is the composition Flat(Indices(point)).
func (g *Lattice) Key(point []float64) uint64 {
	return g.Flat(g.Indices(point))
}

// Point is the composition Center(Unflat(key)).
func (g *Lattice) Point(key uint64) []float64 {
	return g.Center(g.Unflat(key))
}
