package xformhash

import (
	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/dilate"
	"github.com/willsheffler/scheme/orientchart"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// Bt24BCC3Zorder is the bt24-BCC3-Zorder variant: the same two 3D BCC
// lattices as Bt24BCC3 (one for the chart-cell parameters, one for
// translation), but packed with explicit Z-order interleaving instead
// of each lattice's own flat key — the bit layout XformHash.hh's
// get_key/get_center implement directly, reproduced here field for
// field:
//
//	bits 63-59  cell index (5 bits)
//	bits 58-52  cart X high bits (7 bits)
//	bits 51-45  cart Y high bits (7 bits)
//	bits 44-38  cart Z high bits (7 bits)
//	bits 37-2   6x6 Z-order interleave of ori XYZ and cart XYZ low 6 bits
//	bit 1       cart even/odd
//	bit 0       ori even/odd
type Bt24BCC3Zorder struct {
	cart, ori *bcclattice.Lattice
	cartBox   r3.Box
}

// NewBt24BCC3Zorder builds a Bt24BCC3Zorder grid at the given
// resolutions.
func NewBt24BCC3Zorder(cartResl, angResl, cartBound float64) (*Bt24BCC3Zorder, error) {
	oriNside := oriNsideForResolution(bt24CovRad[:], bt24BCC3Multiplier, angResl, 62)
	return NewBt24BCC3ZorderNSide(cartResl, oriNside, cartBound)
}

// NewBt24BCC3ZorderNSide builds a Bt24BCC3Zorder grid with an explicit
// ori_nside.
func NewBt24BCC3ZorderNSide(cartResl float64, oriNside int, cartBound float64) (*Bt24BCC3Zorder, error) {
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

	return &Bt24BCC3Zorder{cart: cart, ori: ori, cartBox: cartBox}, nil
}

// GetKey hashes x to its Z-order packed 64-bit cell key.
func (h *Bt24BCC3Zorder) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	cellIndex, params := orientchart.ValueToParams(x.Rot)
	oriIdx, oriOdd := h.ori.Indices(params[:])
	cartIdx, cartOdd := h.cart.Indices([]float64{trans.X, trans.Y, trans.Z})

	key := uint64(cellIndex) << 59
	key |= (cartIdx[0] >> 6) << 52
	key |= (cartIdx[1] >> 6) << 45
	key |= (cartIdx[2] >> 6) << 38
	key >>= 2
	key |= dilate.Dilate6(oriIdx[0]) << 0
	key |= dilate.Dilate6(oriIdx[1]) << 1
	key |= dilate.Dilate6(oriIdx[2]) << 2
	key |= dilate.Dilate6(cartIdx[0]&63) << 3
	key |= dilate.Dilate6(cartIdx[1]&63) << 4
	key |= dilate.Dilate6(cartIdx[2]&63) << 5
	key <<= 2

	var oriBit, cartBit uint64
	if oriOdd {
		oriBit = 1
	}
	if cartOdd {
		cartBit = 1
	}
	key |= oriBit | cartBit<<1
	return key
}

// GetCenter returns the representative transform for key.
func (h *Bt24BCC3Zorder) GetCenter(key uint64) xform.Xform {
	cellIndex := int(key >> 59)

	cartIdx := []uint64{
		(((key >> 52) & 127) << 6) | (dilate.Undilate6(key>>5) & 63),
		(((key >> 45) & 127) << 6) | (dilate.Undilate6(key>>6) & 63),
		(((key >> 38) & 127) << 6) | (dilate.Undilate6(key>>7) & 63),
	}
	const fieldMask = 1<<36 - 1
	oriIdx := []uint64{
		dilate.Undilate6((key>>2)&fieldMask) & 63,
		dilate.Undilate6((key>>3)&fieldMask) & 63,
		dilate.Undilate6((key>>4)&fieldMask) & 63,
	}
	oriOdd := key&1 != 0
	cartOdd := key&2 != 0

	trans := h.cart.Center(cartIdx, cartOdd)
	params := h.ori.Center(oriIdx, oriOdd)
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
func (h *Bt24BCC3Zorder) ApproxSize() uint64 {
	edge := uint64(h.ori.NSide(0) - 1)
	return edge * edge * edge * 2 * h.cart.Size() * orientchart.NumCells
}

// ApproxNori, like the reference implementation, is not defined for
// this variant.
func (h *Bt24BCC3Zorder) ApproxNori() (uint64, error) { return 0, ErrNotImplemented }
