package xformhash

import (
	"github.com/willsheffler/scheme/bcclattice"
	"github.com/willsheffler/scheme/orientchart"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// Bt24BCC6 is the bt24-BCC6 variant: translation and the 24-cell
// chart's 3 local parameters quantized together on a single 6D BCC
// lattice, with the chart's cell index stored in the key's top bits
// above the lattice's flat key.
type Bt24BCC6 struct {
	grid     *bcclattice.Lattice
	cartBox  r3.Box
	shift    uint
	oriNside int
}

// NewBt24BCC6 builds a Bt24BCC6 grid at the given resolutions.
func NewBt24BCC6(cartResl, angResl, cartBound float64) (*Bt24BCC6, error) {
	oriNside := oriNsideForResolution(bt24CovRad[:], bt24BCC6Multiplier, angResl, 62)
	return NewBt24BCC6NSide(cartResl, oriNside, cartBound)
}

// NewBt24BCC6NSide builds a Bt24BCC6 grid with an explicit ori_nside.
func NewBt24BCC6NSide(cartResl float64, oriNside int, cartBound float64) (*Bt24BCC6, error) {
	cartResl /= 1.7320508075688772 / 2.0 // sqrt(3)/2
	cartBox := r3.NewCubeBox(cartBound)
	n := int(cartBox.Size().X / cartResl)
	if n > 8192 {
		return nil, ErrTooManyCartCells
	}

	oriN := oriNside + 1
	nside := []int{n, n, n, oriN, oriN, oriN}
	lb := []float64{cartBox.Min.X, cartBox.Min.Y, cartBox.Min.Z, -1.0 / float64(oriNside), -1.0 / float64(oriNside), -1.0 / float64(oriNside)}
	ub := []float64{cartBox.Max.X, cartBox.Max.Y, cartBox.Max.Z, 1, 1, 1}
	grid := bcclattice.New(nside, lb, ub)

	if grid.FlatBits()+bt24CellBits > 64 {
		return nil, ErrTooManyCartCells
	}

	return &Bt24BCC6{grid: grid, cartBox: cartBox, shift: grid.FlatBits(), oriNside: oriNside}, nil
}

// GetKey hashes x to its 64-bit cell key.
func (h *Bt24BCC6) GetKey(x xform.Xform) uint64 {
	trans := x.Trans
	if !h.cartBox.Contains(trans) {
		trans = h.cartBox.Clamp(trans)
	}
	cellIndex, params := orientchart.ValueToParams(x.Rot)
	point := []float64{trans.X, trans.Y, trans.Z, params[0], params[1], params[2]}
	return uint64(cellIndex)<<h.shift | h.grid.Key(point)
}

// GetCenter returns the representative transform for key.
func (h *Bt24BCC6) GetCenter(key uint64) xform.Xform {
	mask := uint64(1)<<h.shift - 1
	cellIndex := int(key >> h.shift)
	point := h.grid.Point(key & mask)
	var params [3]float64
	copy(params[:], point[3:])
	rot := orientchart.ParamsToValue(cellIndex, params)
	return xform.New(rot, r3.Vec{X: point[0], Y: point[1], Z: point[2]})
}

// ApproxSize returns the total number of lattice cells across all 24
// orientation chart cells.
func (h *Bt24BCC6) ApproxSize() uint64 { return h.grid.Size() * orientchart.NumCells }

// ApproxNori returns the approximate number of distinct orientation
// cells at this grid's angular resolution.
func (h *Bt24BCC6) ApproxNori() (uint64, error) {
	idx := h.oriNside - 1
	if idx < 0 || idx >= len(bt24BCC6ApproxNori) {
		return 0, ErrOutOfRange
	}
	return bt24BCC6ApproxNori[idx], nil
}
