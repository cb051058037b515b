package boundary

import (
	"fmt"
	"math/bits"
)

// maxPackedBits bounds how many bits OrientedAxes' single uint64 store may
// use; dimensions whose packed entries would not fit are rejected.
const maxPackedBits = 64

// axisBitWidth returns the number of bits needed to hold an axis index in
// [0, dim), i.e. ceil(log2(dim)), with a floor of 1 bit so a single-axis
// space still has an addressable (if constant) axis field.
func axisBitWidth(dim int) uint {
	if dim <= 1 {
		return 1
	}
	return uint(bits.Len(uint(dim - 1)))
}

// entryWidth returns the packed width of one OrientedAxes entry: one sign
// bit plus axisBitWidth(dim) bits for the axis index.
func entryWidth(dim int) uint {
	return 1 + axisBitWidth(dim)
}

// OrientedAxes stores, for each local axis i in [0, D), which global axis
// (with sign) it points along: a rotation/reflection of the reference frame.
// It is a fixed-size packed bitfield with no dynamic allocation; entries are
// read and written through At/Set rather than a reference proxy, since Go
// has no user-definable assignment operator.
type OrientedAxes struct {
	dim  int
	bits uint64
}

// NewIdentityOrientedAxes builds the identity orientation for dimension dim:
// entry i is (axis=i, sign=Positive) for every i.
func NewIdentityOrientedAxes(dim int) (OrientedAxes, error) {
	if dim < 1 {
		return OrientedAxes{}, ErrDimensionTooSmall
	}
	w := entryWidth(dim)
	if uint(dim)*w > maxPackedBits {
		return OrientedAxes{}, fmt.Errorf("boundary: dim=%d width=%d: %w", dim, w, ErrDimensionTooLarge)
	}

	oa := OrientedAxes{dim: dim}
	for i := 0; i < dim; i++ {
		// identity never fails: axis i is always in range for this dim.
		_ = oa.Set(i, boundaryIDFromComponents(i, Positive))
	}
	return oa, nil
}

// boundaryIDFromComponents builds a BoundaryID through NewBoundaryID and
// discards its error — axis indices here are already bounded by
// OrientedAxes' own dimension check.
func boundaryIDFromComponents(axis int, sign Sign) BoundaryID {
	id, _ := NewBoundaryID(axis, sign)
	return id
}

// NewOrientedAxesFromString parses 2*dim characters, each a sign+axis-letter
// pair naming one entry in order (entry 0 first), as specified for D < 4.
func NewOrientedAxesFromString(s string) (OrientedAxes, error) {
	if len(s)%2 != 0 || len(s) == 0 {
		return OrientedAxes{}, fmt.Errorf("boundary: %q: %w", s, ErrBadFaceString)
	}
	dim := len(s) / 2
	if dim >= 4 {
		return OrientedAxes{}, fmt.Errorf("boundary: string constructor only supports D<4, got D=%d: %w", dim, ErrDimensionTooLarge)
	}

	oa, err := NewIdentityOrientedAxes(dim)
	if err != nil {
		return OrientedAxes{}, err
	}
	for i := 0; i < dim; i++ {
		id, err := ParseBoundaryID(s[2*i : 2*i+2])
		if err != nil {
			return OrientedAxes{}, err
		}
		if err := oa.Set(i, id); err != nil {
			return OrientedAxes{}, err
		}
	}
	return oa, nil
}

// Dim returns the number of axis entries.
func (oa OrientedAxes) Dim() int {
	return oa.dim
}

func (oa OrientedAxes) entryMask() uint64 {
	return (uint64(1) << entryWidth(oa.dim)) - 1
}

// At returns the entry at local axis index i, re-expressed as a BoundaryID
// (axis, sign) pair.
func (oa OrientedAxes) At(i int) (BoundaryID, error) {
	if i < 0 || i >= oa.dim {
		return 0, fmt.Errorf("boundary: index %d: %w", i, ErrAxisOutOfRange)
	}
	w := entryWidth(oa.dim)
	shift := uint(i) * w
	raw := (oa.bits >> shift) & oa.entryMask()

	sign := Sign(raw & 1)
	axis := int(raw >> 1)
	return boundaryIDFromComponents(axis, sign), nil
}

// Set overwrites the entry at index i with b, via a masked bit write.
func (oa *OrientedAxes) Set(i int, b BoundaryID) error {
	if i < 0 || i >= oa.dim {
		return fmt.Errorf("boundary: index %d: %w", i, ErrAxisOutOfRange)
	}
	if b.Axis() >= oa.dim {
		return fmt.Errorf("boundary: axis %d for dim %d: %w", b.Axis(), oa.dim, ErrAxisOutOfRange)
	}
	w := entryWidth(oa.dim)
	shift := uint(i) * w
	mask := oa.entryMask() << shift

	raw := uint64(b.Axis())<<1 | uint64(b.Sign()&1)
	oa.bits = (oa.bits &^ mask) | (raw << shift)
	return nil
}

// Entries materializes the full entry sequence as a slice, convenient for
// iteration; At/Set remain the allocation-free accessors.
func (oa OrientedAxes) Entries() []BoundaryID {
	out := make([]BoundaryID, oa.dim)
	for i := range out {
		out[i], _ = oa.At(i)
	}
	return out
}

// Less defines a lexicographic order over the entry sequence: OrientedAxes
// of different dimension compare by dimension first.
func (oa OrientedAxes) Less(other OrientedAxes) bool {
	if oa.dim != other.dim {
		return oa.dim < other.dim
	}
	for i := 0; i < oa.dim; i++ {
		a, _ := oa.At(i)
		b, _ := other.At(i)
		if a != b {
			return a.Less(b)
		}
	}
	return false
}

// Hash folds the dimension and then every entry's packed value into a
// single value using CombineHash, in entry order.
func (oa OrientedAxes) Hash() uint64 {
	seed := CombineHash(0, uint64(oa.dim))
	for i := 0; i < oa.dim; i++ {
		e, _ := oa.At(i)
		seed = CombineHash(seed, uint64(e))
	}
	return seed
}
