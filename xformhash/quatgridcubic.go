package xformhash

import (
	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/cubiclattice"
	"github.com/willsheffler/scheme/dilate"
	"github.com/willsheffler/scheme/orientchart"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// QuatgridCubic is the Quatgrid-Cubic variant: translation on a plain
// cubic grid, the 24-cell chart's local parameters on their own BCC
// lattice (XformHash.hh declares both of this variant's grids as
// Cubic, but its get_key/get_center still read and pack a parity bit
// for the orientation fields — a leftover of copying
// XformHash_bt24_BCC3_Zorder's body without updating the grid it
// quantizes params on; this implementation gives the orientation
// lattice the BCC type its own code already assumes, and drops the
// nonsensical translation parity bit a Cubic grid cannot produce; see
// DESIGN.md).
type QuatgridCubic struct {
	cart     *cubiclattice.Lattice
	ori      *bcclattice.Lattice
	cartBox  r3.Box
	oriNside int
}

// NewQuatgridCubic builds a QuatgridCubic grid at the given
// resolutions.
func NewQuatgridCubic(cartResl, angResl, cartBound float64) (*QuatgridCubic, error) {
	cartResl /= 0.56
	oriNside := oriNsideForResolution(quatgridCubicCovRad[:], 1.0, angResl, 62)

	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	cart := cubiclattice.New([]int{n, n, n},
		[]float64{cartBox.Min.X, cartBox.Min.Y, cartBox.Min.Z},
		[]float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z})

	oriN := oriNside + 2
	oriUB := 1.0 + 1.0/float64(oriNside)
	oriLB := -1.0 / float64(oriNside)
	ori := bcclattice.New([]int{oriN, oriN, oriN},
		[]float64{oriLB, oriLB, oriLB},
		[]float64{oriUB, oriUB, oriUB})

	return &QuatgridCubic{cart: cart, ori: ori, cartBox: cartBox, oriNside: oriNside}, nil
}

// GetKey hashes x to its Z-order packed 64-bit cell key.
func (h *QuatgridCubic) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	cellIndex, params := orientchart.ValueToParams(x.Rot)
	oriIdx, oriOdd := h.ori.Indices(params[:])
	cartIdx := h.cart.Indices([]float64{trans.X, trans.Y, trans.Z})

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

	if oriOdd {
		key |= 1
	}
	return key
}

// GetCenter returns the representative transform for key.
func (h *QuatgridCubic) GetCenter(key uint64) xform.Xform {
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

	trans := h.cart.Center(cartIdx)
	params := h.ori.Center(oriIdx, oriOdd)
	var p3 [3]float64
	copy(p3[:], params)
	rot := orientchart.ParamsToValue(cellIndex, p3)
	return xform.New(rot, r3.Vec{X: trans[0], Y: trans[1], Z: trans[2]})
}

// ApproxSize returns the total number of lattice cells across all 24
// orientation chart cells.
func (h *QuatgridCubic) ApproxSize() uint64 {
	return h.ori.Size() * h.cart.Size() * orientchart.NumCells
}

// ApproxNori, like the reference implementation, is not defined for
// this variant.
func (h *QuatgridCubic) ApproxNori() (uint64, error) { return 0, ErrNotImplemented }
