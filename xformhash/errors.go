package xformhash

import "errors"

// ErrTooManyCartCells is returned when a requested cart_resl/cart_bound
// combination would need more than 8192 cells along an axis, the same
// ceiling XformHash.hh enforces to keep a Key's Cartesian fields within
// their allotted bits.
var ErrTooManyCartCells = errors.New("xformhash: more than 8192 cartesian cells requested")

// ErrTooManyOriCells is returned when a requested orientation
// resolution would need more ori_nside cells than a variant's
// covering-radius table supports.
var ErrTooManyOriCells = errors.New("xformhash: more orientation cells requested than supported")

// ErrOutOfRange is returned when a requested angular resolution
// resolves to an ori_nside outside the range its approx_nori lookup
// table covers.
var ErrOutOfRange = errors.New("xformhash: ori_nside out of range for approx_nori table")

// ErrNotImplemented is returned by approx_nori on the variants whose
// reference implementation never populated a lookup table for it
// (XformHash_bt24_BCC3(_Zorder), XformHash_bt24_Cubic_Zorder,
// XformHash_Quatgrid_Cubic all throw std::logic_error("not
// implemented") in XformHash.hh).
var ErrNotImplemented = errors.New("xformhash: approx_nori not implemented for this variant")
