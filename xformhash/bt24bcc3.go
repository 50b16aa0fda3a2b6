package xformhash

import (
	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/orientchart"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// bt24CellBits is the number of bits needed to hold a 24-cell index.
const bt24CellBits = 5 // bits.Len(23)

// Bt24BCC3 is the bt24-BCC3 variant: the 24-cell orientation chart for
// rotation, each cell's 3 local parameters quantized on their own 3D
// BCC lattice, translation quantized on a separate 3D BCC lattice. The
// key packs cell index, then the translation lattice's flat key, then
// the orientation lattice's flat key, each field sized to the grids
// actually built (XformHash.hh instead hardcodes a 5/41/18 bit split
// tuned to its own bcc_lattice.hh internals, which were not retrieved
// into this repository's reference pack; see DESIGN.md).
type Bt24BCC3 struct {
	cart, ori         *bcclattice.Lattice
	cartBox           r3.Box
	cartBits, oriBits uint
}

// NewBt24BCC3 builds a Bt24BCC3 grid at the given resolutions.
func NewBt24BCC3(cartResl, angResl, cartBound float64) (*Bt24BCC3, error) {
	oriNside := oriNsideForResolution(bt24CovRad[:], bt24BCC3Multiplier, angResl, 62)
	return NewBt24BCC3NSide(cartResl, oriNside, cartBound)
}

// NewBt24BCC3NSide builds a Bt24BCC3 grid with an explicit ori_nside.
func NewBt24BCC3NSide(cartResl float64, oriNside int, cartBound float64) (*Bt24BCC3, error) {
	cartResl /= 0.56
	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	cart := bcclattice.New([]int{n, n, n},
		[]float64{cartBox.Min.X, cartBox.Min.Y, cartBox.Min.Z},
		[]float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z})

	oriN := oriNside + 2
	oriUB := 1.0 + 1.0/float64(oriNside)
	oriLB := -1.0 / float64(oriNside)
	ori := bcclattice.New([]int{oriN, oriN, oriN},
		[]float64{oriLB, oriLB, oriLB},
		[]float64{oriUB, oriUB, oriUB})

	cartBits, oriBits := cart.FlatBits(), ori.FlatBits()
	if cartBits+oriBits+bt24CellBits > 64 {
		return nil, ErrTooManyCartCells
	}

	return &Bt24BCC3{cart: cart, ori: ori, cartBox: cartBox, cartBits: cartBits, oriBits: oriBits}, nil
}

// GetKey hashes x to its 64-bit cell key.
func (h *Bt24BCC3) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	cellIndex, params := orientchart.ValueToParams(x.Rot)
	cartFlat := h.cart.Key([]float64{trans.X, trans.Y, trans.Z})
	oriFlat := h.ori.Key(params[:])
	return uint64(cellIndex)<<(h.cartBits+h.oriBits) | cartFlat<<h.oriBits | oriFlat
}

// GetCenter returns the representative transform for key.
func (h *Bt24BCC3) GetCenter(key uint64) xform.Xform {
	oriMask := uint64(1)<<h.oriBits - 1
	cartMask := uint64(1)<<h.cartBits - 1
	cellIndex := int(key >> (h.cartBits + h.oriBits))
	cartFlat := (key >> h.oriBits) & cartMask
	oriFlat := key & oriMask

	trans := h.cart.Point(cartFlat)
	params := h.ori.Point(oriFlat)
	var p3 [3]float64
	copy(p3[:], params)
	rot := orientchart.ParamsToValue(cellIndex, p3)
	return xform.New(rot, r3.Vec{X: trans[0], Y: trans[1], Z: trans[2]})
}

// ApproxSize returns the total number of lattice cells across all 24
// orientation chart cells: (n-1)^3 orientation cells, where n =
// ori_nside+2 is the orientation lattice's cell count per axis, each
// doubled for the BCC parity bit, times every translation cell, times
// 24 chart cells.
func (h *Bt24BCC3) ApproxSize() uint64 {
	edge := uint64(h.ori.NSide(0) - 1)
	return edge * edge * edge * 2 * h.cart.Size() * orientchart.NumCells
}

// ApproxNori, like the reference implementation, is not defined for
// this variant.
func (h *Bt24BCC3) ApproxNori() (uint64, error) { return 0, ErrNotImplemented }
