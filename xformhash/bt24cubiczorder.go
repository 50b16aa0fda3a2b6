package xformhash

import (
	"github.com/willsheffler/scheme/cubiclattice"
	"github.com/willsheffler/scheme/dilate"
	"github.com/willsheffler/scheme/orientchart"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// Bt24CubicZorder is the bt24-Cubic-Zorder variant: like Bt24BCC3Zorder,
// but both translation and the chart's local parameters are quantized
// on plain cubic grids rather than BCC ones, so the key carries no
// parity bits (bits 0-1 are always zero).
type Bt24CubicZorder struct {
	cart, ori *cubiclattice.Lattice
	cartBox   r3.Box
}

// NewBt24CubicZorder builds a Bt24CubicZorder grid at the given
// resolutions.
func NewBt24CubicZorder(cartResl, angResl, cartBound float64) (*Bt24CubicZorder, error) {
	cartResl /= 0.867
	oriNside := oriNsideForResolution(bt24CubicCovRad[:], bt24CubicMultiplier, angResl, 62)

	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	cart := cubiclattice.New([]int{n, n, n},
		[]float64{cartBox.Min.X, cartBox.Min.Y, cartBox.Min.Z},
		[]float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z})
	ori := cubiclattice.New([]int{oriNside, oriNside, oriNside},
		[]float64{0, 0, 0}, []float64{1, 1, 1})

	return &Bt24CubicZorder{cart: cart, ori: ori, cartBox: cartBox}, nil
}

// GetKey hashes x to its Z-order packed 64-bit cell key.
func (h *Bt24CubicZorder) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	cellIndex, params := orientchart.ValueToParams(x.Rot)
	oriIdx := h.ori.Indices(params[:])
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
	return key
}

// GetCenter returns the representative transform for key.
func (h *Bt24CubicZorder) GetCenter(key uint64) xform.Xform {
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

	trans := h.cart.Center(cartIdx)
	params := h.ori.Center(oriIdx)
	var p3 [3]float64
	copy(p3[:], params)
	rot := orientchart.ParamsToValue(cellIndex, p3)
	return xform.New(rot, r3.Vec{X: trans[0], Y: trans[1], Z: trans[2]})
}

// ApproxSize returns the total number of lattice cells across all 24
// orientation chart cells.
func (h *Bt24CubicZorder) ApproxSize() uint64 {
	return h.ori.Size() * h.cart.Size() * orientchart.NumCells
}

// ApproxNori, like the reference implementation, is not defined for
// this variant.
func (h *Bt24CubicZorder) ApproxNori() (uint64, error) { return 0, ErrNotImplemented }
