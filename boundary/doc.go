// Package boundary implements the bit-packed oriented-boundary algebra that
// lets two mesh cells with different local axis orientations agree on which
// face of the reference hypercube they are sharing.
//
// Three types compose the algebra:
//
//   - BoundaryID: one of the 2*D faces of a D-dimensional reference cube,
//     packed as (sign, axis) into a single small unsigned integer.
//   - OrientedAxes: a rotation/reflection of the reference frame, stored as
//     a packed sequence of D (sign, axis) entries.
//   - OrientedBoundary: a BoundaryID named in the rotated frame of an
//     OrientedAxes.
//
// All three are small comparable value types, so they can be used directly
// as map keys (including as the two halves of an unordered pair key) without
// any hand-rolled hashing — connectivity.Map relies on this.
//
// Errors
//
//   - ErrUnknownAxisLetter: ParseBoundaryID saw a letter other than x, y, z
//     (or, for D > 3, a decimal axis index it could not parse).
//   - ErrBadSign: ParseBoundaryID saw a sign character other than '+' or '-'.
//   - ErrDimensionTooLarge: a dimension does not fit the packed encoding.
//   - ErrDimensionMismatch: declared for OrientedAxes/OrientedBoundary
//     values of different dimension; no function in this package returns
//     it (Less orders values of different dimension by dimension).
package boundary
