// Package orientchart implements the 24-cell (tetracontoctachoron)
// orientation chart from spec.md §5: a decomposition of SO(3) into 24
// Voronoi cells centered on the 24 Hurwitz unit quaternions, each cell
// mapped to a 3-parameter box via local projective quaternion
// coordinates. This is the orientation half of the bt24 family of
// XformHash variants, the rotational analogue of what bcclattice and
// cubiclattice do for translation.
//
// The 24 cell centers are the unit quaternions of the binary
// tetrahedral group: the 8 of the form (+-1,0,0,0) and permutations,
// and the 16 of the form (+-0.5,+-0.5,+-0.5,+-0.5). Their convex hull's
// Voronoi cell boundaries bisect each pair of adjacent centers; working
// that bisector algebra out around the identity cell center (1,0,0,0)
// reduces, in the center's own local projective coordinates
// p=(qx,qy,qz)/qw, to the regular octahedron |px|+|py|+|pz| <= 1 (the
// original TetracontoctachoronMap.hh that fixes this cell width was not
// retrieved into the example pack; see DESIGN.md's Open Question
// resolution for the derivation and the resulting half-width W=1).
package orientchart

import (
	"math"

	"github.com/willsheffler/scheme/quat"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// W is the half-width of a chart cell in local projective quaternion
// coordinates: a cell spans [-W, W] along each of its three axes.
const W = 1.0

// cellCenters holds the 24 Hurwitz unit quaternions, in a fixed order:
// first the 8 signed-basis quaternions (identity first), then the 16
// half-integer quaternions.
var cellCenters = buildCellCenters()

func buildCellCenters() [24]quat.Number {
	var c [24]quat.Number
	i := 0
	basis := [4][4]float64{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	}
	for _, b := range basis {
		for _, sign := range [2]float64{1, -1} {
			c[i] = quat.Number{Real: sign * b[0], Imag: sign * b[1], Jmag: sign * b[2], Kmag: sign * b[3]}
			i++
		}
	}
	const h = 0.5
	for _, sw := range [2]float64{1, -1} {
		for _, sx := range [2]float64{1, -1} {
			for _, sy := range [2]float64{1, -1} {
				for _, sz := range [2]float64{1, -1} {
					c[i] = quat.Number{Real: sw * h, Imag: sx * h, Jmag: sy * h, Kmag: sz * h}
					i++
				}
			}
		}
	}
	return c
}

// NumCells is the number of cells in the chart.
const NumCells = 24

// CellCenter returns the unit quaternion at the center of cell id.
func CellCenter(id int) quat.Number { return cellCenters[id] }

// Cell returns the index of the chart cell closest to rotation q,
// breaking ties (which only occur on a measure-zero boundary set) in
// favor of the lowest cell index.
func Cell(q quat.Number) int {
	best := 0
	bestDot := -1.0
	for i, c := range cellCenters {
		d := math.Abs(quat.Dot(q, c))
		if d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}

// ValueToParams maps a rotation to its chart cell id and the cell-local
// parameters in [0, 1]^3.
func ValueToParams(rot *r3.Mat) (cellID int, params [3]float64) {
	q := xform.MatToQuat(rot)
	cellID = Cell(q)
	params = toLocalParams(q, cellID)
	return cellID, params
}

// ParamsToValue is the inverse of ValueToParams: given a cell id and
// its cell-local parameters, reconstructs the rotation matrix.
func ParamsToValue(cellID int, params [3]float64) *r3.Mat {
	q := fromLocalParams(cellID, params)
	return xform.QuatToMat(q)
}

// toLocalParams rotates q into cell's local frame (q' = cellcen^-1 * q,
// folded to positive real part), projects to p = q'.Imag/q'.Real, and
// rescales the octahedron |px|+|py|+|pz| <= W into the unit box.
func toLocalParams(q quat.Number, cellID int) [3]float64 {
	c := cellCenters[cellID]
	qp := quat.Mul(quat.Inv(c), q)
	qp = quat.Normalize(qp)
	var p [3]float64
	p[0] = qp.Imag / qp.Real
	p[1] = qp.Jmag / qp.Real
	p[2] = qp.Kmag / qp.Real
	var params [3]float64
	for i, v := range p {
		params[i] = v/(2*W) + 0.5
	}
	return params
}

// fromLocalParams is the inverse of toLocalParams.
func fromLocalParams(cellID int, params [3]float64) quat.Number {
	var p [3]float64
	for i, v := range params {
		p[i] = (v - 0.5) * 2 * W
	}
	r := 1 / math.Sqrt(1+p[0]*p[0]+p[1]*p[1]+p[2]*p[2])
	qp := quat.Number{Real: r, Imag: r * p[0], Jmag: r * p[1], Kmag: r * p[2]}
	c := cellCenters[cellID]
	return quat.Normalize(quat.Mul(c, qp))
}
