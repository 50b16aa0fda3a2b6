package xformhash

import (
	"math"
	"testing"

	"github.com/willsheffler/scheme/quat"
	"github.com/willsheffler/scheme/r3"
	"github.com/willsheffler/scheme/xform"
)

// ninetyDegreeZ is a 90 degree rotation about the Z axis, used to
// exercise the orientation chart away from cell 0's center (which is
// what every identity-transform round trip stays pinned to).
func ninetyDegreeZ() *r3.Mat {
	s := math.Sqrt2 / 2
	return xform.QuatToMat(quat.Number{Real: s, Kmag: s})
}

func TestQuatBCC7RoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewQuatBCC7(1.0, 10.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatBCC7: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.3 {
		t.Errorf("angular distance %v too large for ang_resl 10deg", d)
	}
	if n := r3.Norm(r3.Sub(x.Trans, center.Trans)); n > 2 {
		t.Errorf("translation distance %v too large for cart_resl 1.0", n)
	}
	if size := h.ApproxSize(); size == 0 {
		t.Errorf("ApproxSize() = 0")
	}
	if _, err := h.ApproxNori(); err != nil {
		t.Errorf("ApproxNori() error: %v", err)
	}
}

func TestQuatBCC7TooManyCells(t *testing.T) {
	t.Parallel()
	if _, err := NewQuatBCC7(0.001, 10.0, 512.0); err != ErrTooManyCartCells {
		t.Errorf("NewQuatBCC7 with tiny cart_resl: got err %v, want ErrTooManyCartCells", err)
	}
}

func TestQuatBCC7ZorderRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewQuatBCC7Zorder(1.0, 10.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatBCC7Zorder: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.3 {
		t.Errorf("angular distance %v too large", d)
	}
	if n := r3.Norm(r3.Sub(x.Trans, center.Trans)); n > 2 {
		t.Errorf("translation distance %v too large", n)
	}
}

func TestQuatBCC7ZorderCartShiftKey(t *testing.T) {
	t.Parallel()
	h, err := NewQuatBCC7Zorder(1.0, 10.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatBCC7Zorder: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	c0 := h.GetCenter(key)

	// P6: the shifted center's translation must move by exactly
	// (dx,dy,dz)*cart_width, not merely "in the right direction", and
	// its orientation must be untouched.
	dx, dy, dz := int64(3), int64(-2), int64(1)
	shifted := h.CartShiftKey(key, dx, dy, dz)
	c1 := h.GetCenter(shifted)

	w := h.grid.Width(0)
	want := r3.Vec{X: c0.Trans.X + float64(dx)*w, Y: c0.Trans.Y + float64(dy)*w, Z: c0.Trans.Z + float64(dz)*w}
	if n := r3.Norm(r3.Sub(c1.Trans, want)); n > 1e-9 {
		t.Errorf("CartShiftKey(%d,%d,%d): center moved to %v, want %v", dx, dy, dz, c1.Trans, want)
	}
	if d := xform.AngularDistance(c0, c1); d > 1e-9 {
		t.Errorf("CartShiftKey changed orientation: angular distance %v, want 0", d)
	}
}

func TestBt24BCC3RoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewBt24BCC3(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewBt24BCC3: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if _, err := h.ApproxNori(); err != ErrNotImplemented {
		t.Errorf("ApproxNori() = %v, want ErrNotImplemented", err)
	}
}

func TestBt24BCC3ZorderRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewBt24BCC3Zorder(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewBt24BCC3Zorder: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if n := r3.Norm(r3.Sub(x.Trans, center.Trans)); n > 3 {
		t.Errorf("translation distance %v too large", n)
	}
}

func TestBt24BCC6RoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewBt24BCC6(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewBt24BCC6: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if _, err := h.ApproxNori(); err != nil {
		t.Errorf("ApproxNori() error: %v", err)
	}
}

func TestBt24CubicZorderRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewBt24CubicZorder(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewBt24CubicZorder: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if _, err := h.ApproxNori(); err != ErrNotImplemented {
		t.Errorf("ApproxNori() = %v, want ErrNotImplemented", err)
	}
}

func TestQuatgridCubicRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewQuatgridCubic(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatgridCubic: %v", err)
	}
	x := xform.Identity()
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if _, err := h.ApproxNori(); err != ErrNotImplemented {
		t.Errorf("ApproxNori() = %v, want ErrNotImplemented", err)
	}
}

// TestBt24BCC6NinetyDegreeZ is seed scenario 3 from spec.md §8: a 90
// degree rotation about Z at zero translation must round-trip to
// within 0.2 radians and back to the same key.
func TestBt24BCC6NinetyDegreeZ(t *testing.T) {
	t.Parallel()
	h, err := NewBt24BCC6(0.5, 5.0, 32.0)
	if err != nil {
		t.Fatalf("NewBt24BCC6: %v", err)
	}
	x := xform.New(ninetyDegreeZ(), r3.Vec{})
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.2 {
		t.Errorf("angular distance %v too large for a 90deg rotation at ang_resl 5deg", d)
	}
	if h.GetKey(center) != key {
		t.Errorf("GetKey(GetCenter(key)) != key for a 90deg rotation")
	}
}

// TestQuatBCC7NinetyDegreeZRoundTrip exercises the Quat-BCC7 family
// away from the identity, where a naive positive-w hemisphere fold on
// GetKey's input would desync it from GetCenter's reconstruction.
func TestQuatBCC7NinetyDegreeZRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewQuatBCC7(1.0, 10.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatBCC7: %v", err)
	}
	x := xform.New(ninetyDegreeZ(), r3.Vec{X: 10, Y: -5, Z: 2})
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.3 {
		t.Errorf("angular distance %v too large", d)
	}
	if h.GetKey(center) != key {
		t.Errorf("GetKey(GetCenter(key)) != key for a 90deg rotation")
	}
}

func TestQuatBCC7ZorderNinetyDegreeZRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewQuatBCC7Zorder(1.0, 10.0, 50.0)
	if err != nil {
		t.Fatalf("NewQuatBCC7Zorder: %v", err)
	}
	x := xform.New(ninetyDegreeZ(), r3.Vec{X: 10, Y: -5, Z: 2})
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.3 {
		t.Errorf("angular distance %v too large", d)
	}
	if h.GetKey(center) != key {
		t.Errorf("GetKey(GetCenter(key)) != key for a 90deg rotation")
	}
}

func TestBt24BCC3NinetyDegreeZRoundTrip(t *testing.T) {
	t.Parallel()
	h, err := NewBt24BCC3(1.0, 15.0, 50.0)
	if err != nil {
		t.Fatalf("NewBt24BCC3: %v", err)
	}
	x := xform.New(ninetyDegreeZ(), r3.Vec{X: 3, Y: 3, Z: -3})
	key := h.GetKey(x)
	center := h.GetCenter(key)
	if d := xform.AngularDistance(x, center); d > 0.5 {
		t.Errorf("angular distance %v too large", d)
	}
	if h.GetKey(center) != key {
		t.Errorf("GetKey(GetCenter(key)) != key for a 90deg rotation")
	}
}

// TestBt24BCC3ApproxSizeFormula is seed scenario 5 from spec.md §8:
// ApproxSize must equal the product formula spec §4.5.4 gives,
// (n-1)^3 * 2 * cart_grid.size() * 24, where n = ori_nside+2 is the
// orientation lattice's cell count per axis.
func TestBt24BCC3ApproxSizeFormula(t *testing.T) {
	t.Parallel()
	const oriNside = 4
	h, err := NewBt24BCC3NSide(1.0, oriNside, 16.0)
	if err != nil {
		t.Fatalf("NewBt24BCC3NSide: %v", err)
	}
	edge := uint64(oriNside + 2 - 1)
	want := edge * edge * edge * 2 * h.cart.Size() * 24
	if got := h.ApproxSize(); got != want {
		t.Errorf("ApproxSize() = %d, want %d", got, want)
	}
}

func TestBt24BCC3ZorderApproxSizeFormula(t *testing.T) {
	t.Parallel()
	const oriNside = 4
	h, err := NewBt24BCC3ZorderNSide(1.0, oriNside, 16.0)
	if err != nil {
		t.Fatalf("NewBt24BCC3ZorderNSide: %v", err)
	}
	edge := uint64(oriNside + 2 - 1)
	want := edge * edge * edge * 2 * h.cart.Size() * 24
	if got := h.ApproxSize(); got != want {
		t.Errorf("ApproxSize() = %d, want %d", got, want)
	}
}

func TestOriNsideForResolutionMonotone(t *testing.T) {
	t.Parallel()
	coarse := oriNsideForResolution(quat7CovRad[:], quat7Multiplier, 30.0, 100)
	fine := oriNsideForResolution(quat7CovRad[:], quat7Multiplier, 1.0, 100)
	if fine <= coarse {
		t.Errorf("finer angular resolution should need more ori cells: coarse=%d fine=%d", coarse, fine)
	}
}
