package xformhash

import (
	"math"

	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/quat"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// QuatBCC7 is the Quat-BCC7 variant: a single 7-dimensional BCC lattice
// over (tx, ty, tz, qw, qx, qy, qz), quantizing translation and the
// full unit quaternion together. It favors simplicity over key size: no
// Z-order packing, just the lattice's own flat index.
type QuatBCC7 struct {
	grid     *bcclattice.Lattice
	cartBox  r3.Box
	oriNside int
}

// NewQuatBCC7 builds a QuatBCC7 grid covering translations within
// cartBound of the origin at Cartesian resolution cartResl, and unit
// quaternions at angular resolution angResl (degrees).
func NewQuatBCC7(cartResl, angResl, cartBound float64) (*QuatBCC7, error) {
	cartResl /= math.Sqrt(3) / 2.0
	oriNside := oriNsideForResolution(quat7CovRad[:], quat7Multiplier, angResl, 100)

	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	oriN := oriNside + 2
	nside := []int{n, n, n, oriN, oriN, oriN, oriN}
	oriUB := 1.0 + 2.0/float64(oriNside)
	ub := []float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z, oriUB, oriUB, oriUB, oriUB}
	lb := make([]float64, 7)
	for i, v := range ub {
		lb[i] = -v
	}

	return &QuatBCC7{grid: bcclattice.New(nside, lb, ub), cartBox: cartBox, oriNside: oriNside}, nil
}

// GetKey hashes x to its 64-bit cell key. The quaternion is not folded
// into the positive-w hemisphere: the grid's symmetric ori bounds
// already cover both q and -q, and folding here would desync GetKey
// from the sign GetCenter reads back off the lattice.
func (h *QuatBCC7) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	q := x.QuatUnfolded()
	point := []float64{trans.X, trans.Y, trans.Z, q.Real, q.Imag, q.Jmag, q.Kmag}
	return h.grid.Key(point)
}

// GetCenter returns the representative transform for key.
func (h *QuatBCC7) GetCenter(key uint64) xform.Xform {
	p := h.grid.Point(key)
	q := quat.NormalizeUnsigned(quat.Number{Real: p[3], Imag: p[4], Jmag: p[5], Kmag: p[6]})
	return xform.FromQuat(q, r3.Vec{X: p[0], Y: p[1], Z: p[2]})
}

// ApproxSize returns the total number of lattice cells.
func (h *QuatBCC7) ApproxSize() uint64 { return h.grid.Size() }

// ApproxNori returns the approximate number of distinct orientation
// cells at this grid's angular resolution.
func (h *QuatBCC7) ApproxNori() (uint64, error) {
	idx := h.oriNside - 2
	if idx < 0 || idx >= len(quat7ApproxNori) {
		return 0, ErrOutOfRange
	}
	return quat7ApproxNori[idx], nil
}

// AngWidth returns the orientation lattice's per-axis cell width.
func (h *QuatBCC7) AngWidth() float64 { return h.grid.Width(3) }
