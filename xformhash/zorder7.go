package xformhash

import (
	"math"

	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/dilate"
	"github.com/willsheffler/scheme/quat"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// oriMask7, ORI_MASK in XformHash.hh, clears every bit a
// QuatBCC7Zorder key spends on its Cartesian fields, leaving the parity
// bit and the four dilated orientation lanes untouched. The reference
// implementation hardcodes this as a 64-bit binary literal; it is
// derived here from the same shift/width constants GetKey and
// GetCenter use, so the two can never drift apart.
var oriMask7 = ^cartMask7()

func cartMask7() uint64 {
	lowBits := uint64(0x3F) // 6 meaningful bits per axis, dilated by 7
	low := dilate.Dilate7(lowBits)
	lowMask := low<<1 | low<<2 | low<<3
	highMask := uint64(0x7F)<<57 | uint64(0x7F)<<50 | uint64(0x7F)<<43
	return lowMask | highMask
}

// QuatBCC7Zorder is the Quat-BCC7-Zorder variant: the same 7D BCC
// lattice as QuatBCC7, keyed instead by Z-order (Morton) interleaving
// so that nearby cells get numerically nearby keys.
type QuatBCC7Zorder struct {
	grid     *bcclattice.Lattice
	cartBox  r3.Box
	oriNside int
}

// NewQuatBCC7Zorder builds a QuatBCC7Zorder grid at the given
// resolutions, choosing ori_nside automatically from angResl.
func NewQuatBCC7Zorder(cartResl, angResl, cartBound float64) (*QuatBCC7Zorder, error) {
	oriNside := oriNsideForResolution(quat7ZorderCovRad[:], quat7Multiplier, angResl, 61)
	return NewQuatBCC7ZorderNSide(cartResl, oriNside, cartBound)
}

// NewQuatBCC7ZorderNSide builds a QuatBCC7Zorder grid with an explicit
// ori_nside instead of deriving one from an angular resolution.
func NewQuatBCC7ZorderNSide(cartResl float64, oriNside int, cartBound float64) (*QuatBCC7Zorder, error) {
	cartResl /= math.Sqrt(3) / 2.0
	if oriNside > 62 {
		return nil, ErrTooManyOriCells
	}
	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	oriN := oriNside + 1
	nside := []int{n, n, n, oriN, oriN, oriN, oriN}
	lb := []float64{cartBox.Min.X, cartBox.Min.Y, cartBox.Min.Z,
		-1 - 2/float64(oriNside), -1 - 2/float64(oriNside), -1 - 2/float64(oriNside), -1 - 2/float64(oriNside)}
	ub := []float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z, 1, 1, 1, 1}

	return &QuatBCC7Zorder{grid: bcclattice.New(nside, lb, ub), cartBox: cartBox, oriNside: oriNside}, nil
}

// GetKey hashes x to its Z-order packed 64-bit cell key. The quaternion
// is not folded into the positive-w hemisphere: the grid's ori bounds
// already cover both q and -q, and folding here would desync GetKey
// from the sign GetCenter reads back off the lattice.
func (h *QuatBCC7Zorder) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	q := x.QuatUnfolded()
	point := []float64{trans.X, trans.Y, trans.Z, q.Real, q.Imag, q.Jmag, q.Kmag}
	idx, odd := h.grid.Indices(point)

	var key uint64
	if odd {
		key = 1
	}
	key |= (idx[0] >> 6) << 57
	key |= (idx[1] >> 6) << 50
	key |= (idx[2] >> 6) << 43
	key |= dilate.Dilate7(idx[0]&63) << 1
	key |= dilate.Dilate7(idx[1]&63) << 2
	key |= dilate.Dilate7(idx[2]&63) << 3
	key |= dilate.Dilate7(idx[3]) << 4
	key |= dilate.Dilate7(idx[4]) << 5
	key |= dilate.Dilate7(idx[5]) << 6
	key |= dilate.Dilate7(idx[6]) << 7
	return key
}

// GetCenter returns the representative transform for key.
func (h *QuatBCC7Zorder) GetCenter(key uint64) xform.Xform {
	idx, odd := h.unpack(key)
	p := h.grid.Center(idx, odd)
	q := quat.NormalizeUnsigned(quat.Number{Real: p[3], Imag: p[4], Jmag: p[5], Kmag: p[6]})
	return xform.FromQuat(q, r3.Vec{X: p[0], Y: p[1], Z: p[2]})
}

func (h *QuatBCC7Zorder) unpack(key uint64) ([]uint64, bool) {
	odd := key&1 != 0
	idx := make([]uint64, 7)
	idx[0] = (dilate.Undilate7(key>>1) & 63) | (((key >> 57) & 127) << 6)
	idx[1] = (dilate.Undilate7(key>>2) & 63) | (((key >> 50) & 127) << 6)
	idx[2] = (dilate.Undilate7(key>>3) & 63) | (((key >> 43) & 127) << 6)
	idx[3] = dilate.Undilate7(key>>4) & 63
	idx[4] = dilate.Undilate7(key>>5) & 63
	idx[5] = dilate.Undilate7(key>>6) & 63
	idx[6] = dilate.Undilate7(key>>7) & 63
	return idx, odd
}

// CartShiftKey returns the key for the cell offset by (dx, dy, dz)
// lattice steps along the Cartesian axes, leaving orientation and
// parity untouched — a cheap way to enumerate a cell's Cartesian
// neighbors without recomputing the orientation fields.
func (h *QuatBCC7Zorder) CartShiftKey(key uint64, dx, dy, dz int64) uint64 {
	x := int64((dilate.Undilate7(key>>1) & 63) | (((key >> 57) & 127) << 6))
	y := int64((dilate.Undilate7(key>>2) & 63) | (((key >> 50) & 127) << 6))
	z := int64((dilate.Undilate7(key>>3) & 63) | (((key >> 43) & 127) << 6))
	x += dx
	y += dy
	z += dz
	key &= oriMask7
	key |= uint64(x>>6)<<57 | dilate.Dilate7(uint64(x)&63)<<1
	key |= uint64(y>>6)<<50 | dilate.Dilate7(uint64(y)&63)<<2
	key |= uint64(z>>6)<<43 | dilate.Dilate7(uint64(z)&63)<<3
	return key
}

// ApproxSize returns the total number of lattice cells.
func (h *QuatBCC7Zorder) ApproxSize() uint64 { return h.grid.Size() }

// ApproxNori returns the approximate number of distinct orientation
// cells at this grid's angular resolution.
func (h *QuatBCC7Zorder) ApproxNori() (uint64, error) {
	idx := h.oriNside - 2
	if idx < 0 || idx >= len(quat7ApproxNori) {
		return 0, ErrOutOfRange
	}
	return quat7ApproxNori[idx], nil
}

// AngWidth returns the orientation lattice's per-axis cell width.
func (h *QuatBCC7Zorder) AngWidth() float64 { return h.grid.Width(3) }
