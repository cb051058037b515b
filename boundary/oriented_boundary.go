package boundary

import "fmt"

// OrientedBoundary names a face of a particular orientation: an
// OrientedAxes (how the reference cube is rotated/reflected in global
// space) together with a BoundaryID naming a face *in that rotated frame*.
//
// The pair (Axes, Face) is the sole currency by which cells tell the
// connectivity map which face they are presenting to a neighbor.
type OrientedBoundary struct {
	Axes OrientedAxes
	Face BoundaryID
}

// NewOrientedBoundary validates that face's axis is addressable within axes
// before pairing them.
func NewOrientedBoundary(axes OrientedAxes, face BoundaryID) (OrientedBoundary, error) {
	if face.Axis() >= axes.Dim() {
		return OrientedBoundary{}, fmt.Errorf("boundary: face axis %d for dim %d: %w", face.Axis(), axes.Dim(), ErrAxisOutOfRange)
	}
	return OrientedBoundary{Axes: axes, Face: face}, nil
}

// LocalID re-expresses the face in the reference frame: it looks up the
// axes entry at position Face.Axis() and returns a BoundaryID with that
// entry's axis. The sign is the face's sign unchanged when the entry is
// Positive (the local axis points the same way as its global counterpart),
// and flipped when the entry is Negative (the local axis is reflected).
// This is not a bitwise XOR of the stored sign bits: Positive is encoded
// as 1, so an entry-sign XOR would flip on the identity case.
func (ob OrientedBoundary) LocalID() BoundaryID {
	entry, _ := ob.Axes.At(ob.Face.Axis())
	sign := ob.Face.Sign()
	if entry.Sign() == Negative {
		sign = sign.Flip()
	}
	id, _ := NewBoundaryID(entry.Axis(), sign)
	return id
}

// Neg flips the face's sign, leaving the orientation untouched.
func (ob OrientedBoundary) Neg() OrientedBoundary {
	return OrientedBoundary{Axes: ob.Axes, Face: ob.Face.Negate()}
}

// Less gives a total order, axes-major then face.
func (ob OrientedBoundary) Less(other OrientedBoundary) bool {
	if ob.Axes != other.Axes {
		return ob.Axes.Less(other.Axes)
	}
	return ob.Face.Less(other.Face)
}

// Hash folds Face's packed value into Axes.Hash().
func (ob OrientedBoundary) Hash() uint64 {
	return CombineHash(ob.Axes.Hash(), uint64(ob.Face))
}

// String renders "<Face>@<axes entries>" for debugging and test failure
// messages.
func (ob OrientedBoundary) String() string {
	s := ob.Face.String() + "@"
	for _, e := range ob.Axes.Entries() {
		s += e.String()
	}
	return s
}
