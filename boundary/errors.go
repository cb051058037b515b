package boundary

import "errors"

// Sentinel errors for the boundary package. Every constructor in this
// package returns one of these (wrapped with context via fmt.Errorf) rather
// than panicking on bad input.
var (
	// ErrUnknownAxisLetter is returned when a face string names an axis
	// letter/index this package cannot resolve.
	ErrUnknownAxisLetter = errors.New("boundary: unknown axis letter")

	// ErrBadSign is returned when a face string's sign character is
	// neither '+' nor '-'.
	ErrBadSign = errors.New("boundary: sign must be '+' or '-'")

	// ErrBadFaceString is returned when a face string is too short to
	// contain a sign and an axis designator.
	ErrBadFaceString = errors.New("boundary: face string must be at least 2 characters")

	// ErrDimensionTooSmall is returned when a dimension is not positive.
	ErrDimensionTooSmall = errors.New("boundary: dimension must be >= 1")

	// ErrDimensionTooLarge is returned when a dimension does not fit the
	// packed bit encoding this package uses.
	ErrDimensionTooLarge = errors.New("boundary: dimension too large for packed encoding")

	// ErrDimensionMismatch names the combination of OrientedAxes/
	// OrientedBoundary values built for different dimensions. No function
	// in this package returns it.
	ErrDimensionMismatch = errors.New("boundary: dimension mismatch")

	// ErrAxisOutOfRange is returned when an axis index is outside [0, D).
	ErrAxisOutOfRange = errors.New("boundary: axis index out of range")
)
