// Package connectivity discovers, for a tensor-product ansatz space,
// which basis function on one oriented face coincides with which basis
// function on an opposing oriented face — the "ansatz connectivity map"
// that lets a mesh assembler fuse shared degrees of freedom between
// neighboring cells without any cell ever inspecting another cell's
// local numbering.
//
// Build samples the reference ansatz space over a grid of points on each
// of a reference cube's 2*D faces, for every axis-reflection orientation,
// and records which pairs of local function indices take equal values
// there (and are non-vanishing). Map.GetPairs then answers, for any two
// OrientedBoundary values, the list of (left, right) index pairs that
// must be identified.
//
// Errors returned by this package wrap one of:
//
//	ErrPairNotFound
package connectivity
