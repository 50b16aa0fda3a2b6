// Package xform provides the SE(3) rigid-transform type the rest of this
// module hashes, together with the matrix<->quaternion conversions the
// spec's producer contract names as an external collaborator
// ("Matrix3 -> Quaternion, Quaternion -> Matrix3, quaternion product and
// inverse, quaternion normalization") but that gonum's own r3/quat
// packages do not provide directly. Everything else (the arithmetic
// itself) is delegated to quat and r3.
package xform

import (
	"math"

	"github.com/willsheffler/scheme/quat"
	"github.com/willsheffler/scheme/r3"
)

// Xform is a rigid-body transform: a proper orthonormal rotation Rot
// composed with a translation Trans.
type Xform struct {
	Rot   *r3.Mat
	Trans r3.Vec
}

// Identity returns the identity transform.
func Identity() Xform {
	return Xform{Rot: r3.Identity()}
}

// New returns the Xform with rotation rot and translation t.
func New(rot *r3.Mat, t r3.Vec) Xform {
	return Xform{Rot: rot, Trans: t}
}

// Quat returns the unit quaternion representing x's rotation, folded
// into the positive-w hemisphere.
func (x Xform) Quat() quat.Number {
	return MatToQuat(x.Rot)
}

// QuatUnfolded returns the unit quaternion representing x's rotation
// without folding into the positive-w hemisphere: the specific sign
// Shepperd's method produces for x.Rot, left as is. The Quat-BCC7
// family keys on this form, since their lattice spans both q and -q
// and folding before the lattice lookup would make GetKey(GetCenter(k))
// disagree with k whenever the stored cell center has negative Real.
func (x Xform) QuatUnfolded() quat.Number {
	return MatToQuatUnfolded(x.Rot)
}

// FromQuat builds an Xform from a unit quaternion and a translation.
func FromQuat(q quat.Number, t r3.Vec) Xform {
	return Xform{Rot: QuatToMat(q), Trans: t}
}

// QuatToMat converts a unit quaternion to its 3x3 rotation matrix.
func QuatToMat(q quat.Number) *r3.Mat {
	q = quat.Normalize(q)
	w, i, j, k := q.Real, q.Imag, q.Jmag, q.Kmag
	ii := 2 * i * i
	jj := 2 * j * j
	kk := 2 * k * k
	wi := 2 * w * i
	wj := 2 * w * j
	wk := 2 * w * k
	ij := 2 * i * j
	jk := 2 * j * k
	ki := 2 * k * i
	return r3.NewMat([]float64{
		1 - (jj + kk), ij - wk, ki + wj,
		ij + wk, 1 - (ii + kk), jk - wi,
		ki - wj, jk + wi, 1 - (ii + jj),
	})
}

// MatToQuat converts a proper orthonormal rotation matrix to the unit
// quaternion representing the same rotation, folded into the
// positive-w hemisphere.
func MatToQuat(m *r3.Mat) quat.Number {
	return quat.Normalize(MatToQuatUnfolded(m))
}

// MatToQuatUnfolded is MatToQuat without the positive-w fold: it
// returns exactly the quaternion Shepperd's method produces for m,
// selecting whichever of the four algebraically-equivalent formulas has
// the best-conditioned denominator for the given matrix to stay
// numerically stable near every rotation including 180 degree turns.
func MatToQuatUnfolded(m *r3.Mat) quat.Number {
	d := m.Raw()
	m00, m01, m02 := d[0], d[1], d[2]
	m10, m11, m12 := d[3], d[4], d[5]
	m20, m21, m22 := d[6], d[7], d[8]

	trace := m00 + m11 + m22

	var q quat.Number
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = quat.Number{
			Real: 0.25 * s,
			Imag: (m21 - m12) / s,
			Jmag: (m02 - m20) / s,
			Kmag: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: 0.25 * s,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: 0.25 * s,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: 0.25 * s,
		}
	}
	return quat.NormalizeUnsigned(q)
}

// Apply returns the image of p under x: x.Rot rotates p, then x.Trans
// shifts it.
func (x Xform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(x.Rot.MulVec(p), x.Trans)
}

// AngularDistance returns the angle in radians between the rotations of
// a and b, via the double-cover-aware quaternion metric
// 2*acos(|dot(qa,qb)|).
func AngularDistance(a, b Xform) float64 {
	qa, qb := a.Quat(), b.Quat()
	d := quat.Dot(qa, qb)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return 2 * math.Acos(math.Abs(d))
}
