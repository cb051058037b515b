package boundary

import (
	"fmt"
	"strconv"
)

// Sign is the polarity of a face or axis entry: Negative for the face at
// x=-1 (or an axis pointing the "wrong way"), Positive for x=+1.
type Sign uint8

const (
	// Negative names the -1 face along an axis.
	Negative Sign = 0
	// Positive names the +1 face along an axis.
	Positive Sign = 1
)

// String renders the sign as the conventional '-' / '+' character.
func (s Sign) String() string {
	if s == Positive {
		return "+"
	}
	return "-"
}

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	return 1 - s
}

// maxPackedAxis bounds the axis index a BoundaryID can encode: bit 0 holds
// the sign, and axis i occupies the 1-hot marker at bit i+1, so the whole
// value must fit in 32 bits.
const maxPackedAxis = 30

// BoundaryID names one of the 2*D faces of a D-dimensional reference cube
// by (axis, sign). It is packed into a single uint32 whose bit layout is an
// invariant of the package:
//
//	bit 0:      sign (0 = negative, 1 = positive)
//	bits 1..:   a 1-hot marker; the position of the lowest set bit above
//	            bit 0 is the axis index.
//
// Equivalently, the stored value equals (1 << (axis+1)) | sign.
type BoundaryID uint32

// NewBoundaryID constructs a BoundaryID from an explicit (axis, sign) pair.
func NewBoundaryID(axis int, sign Sign) (BoundaryID, error) {
	if axis < 0 {
		return 0, fmt.Errorf("boundary: axis %d: %w", axis, ErrAxisOutOfRange)
	}
	if axis > maxPackedAxis {
		return 0, fmt.Errorf("boundary: axis %d exceeds packed maximum %d: %w", axis, maxPackedAxis, ErrDimensionTooLarge)
	}

	return BoundaryID(uint32(1)<<(uint(axis)+1) | uint32(sign&1)), nil
}

// DefaultBoundaryID returns the first face in stream order: (axis=0, sign=Negative).
func DefaultBoundaryID() BoundaryID {
	id, _ := NewBoundaryID(0, Negative)
	return id
}

// ParseBoundaryID parses a two-character face name such as "+x", "-y", or
// "-z". For dimensions beyond 3, or for the canonical (axis,sign) form
// produced by String, it also accepts a decimal axis index after the sign,
// e.g. "-0", "+3".
func ParseBoundaryID(s string) (BoundaryID, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("boundary: %q: %w", s, ErrBadFaceString)
	}

	var sign Sign
	switch s[0] {
	case '-':
		sign = Negative
	case '+':
		sign = Positive
	default:
		return 0, fmt.Errorf("boundary: %q: %w", s, ErrBadSign)
	}

	rest := s[1:]
	if len(rest) == 1 {
		switch rest[0] {
		case 'x', 'X':
			return NewBoundaryID(0, sign)
		case 'y', 'Y':
			return NewBoundaryID(1, sign)
		case 'z', 'Z':
			return NewBoundaryID(2, sign)
		}
	}
	axis, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("boundary: %q: %w", s, ErrUnknownAxisLetter)
	}

	return NewBoundaryID(axis, sign)
}

// Axis returns the axis index this boundary names: the position of the
// lowest set bit above bit 0.
func (b BoundaryID) Axis() int {
	v := uint32(b) >> 1
	axis := 0
	for v > 1 {
		v >>= 1
		axis++
	}
	return axis
}

// Sign returns the face's sign.
func (b BoundaryID) Sign() Sign {
	return Sign(b & 1)
}

// Next steps to the following face in stream order: (-x, +x, -y, +y, ...).
// It returns ErrDimensionTooLarge once the stream would step past the
// packable axis range rather than silently wrapping.
func (b BoundaryID) Next() (BoundaryID, error) {
	axis, sign := b.Axis(), b.Sign()
	if sign == Negative {
		return NewBoundaryID(axis, Positive)
	}
	return NewBoundaryID(axis+1, Negative)
}

// Negate flips the sign bit, leaving the axis unchanged.
func (b BoundaryID) Negate() BoundaryID {
	id, _ := NewBoundaryID(b.Axis(), b.Sign().Flip())
	return id
}

// Less gives a total order over BoundaryID values, axis-major then sign.
func (b BoundaryID) Less(other BoundaryID) bool {
	if ba, oa := b.Axis(), other.Axis(); ba != oa {
		return ba < oa
	}
	return b.Sign() < other.Sign()
}

// String renders the letter form for axes 0..2 ("x","y","z") and the
// canonical "<sign><axis>" decimal form otherwise; the decimal form is
// always accepted back by ParseBoundaryID.
func (b BoundaryID) String() string {
	axis, sign := b.Axis(), b.Sign()
	switch axis {
	case 0:
		return sign.String() + "x"
	case 1:
		return sign.String() + "y"
	case 2:
		return sign.String() + "z"
	default:
		return sign.String() + strconv.Itoa(axis)
	}
}

// combineHashSeed is the multiplicative splatter constant from the boost
// hash_combine family, shared by every composite hash in this package.
const combineHashSeed = 0x9e3779b9

// CombineHash folds v into seed using a standard multiplicative splatter:
// seed ^= (v + 0x9e3779b9 + seed<<6 + seed>>2). Repeated application over a
// tuple's fields yields a stable, order-sensitive hash of the tuple.
func CombineHash(seed uint64, v uint64) uint64 {
	return seed ^ (v + combineHashSeed + (seed << 6) + (seed >> 2))
}

// Hash returns a CombineHash-derived hash of this BoundaryID, for callers
// that want to build their own hash-based sets/maps over faces instead of
// relying on BoundaryID's native comparability.
func (b BoundaryID) Hash() uint64 {
	return CombineHash(0, uint64(b))
}
