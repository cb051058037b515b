package ansatz

import "errors"

// Sentinel errors for the ansatz package.
var (
	// ErrEmptyBasis is returned when a Space is built over zero functions.
	ErrEmptyBasis = errors.New("ansatz: basis must be non-empty")

	// ErrDimensionTooSmall is returned when a Space's dimension is < 1.
	ErrDimensionTooSmall = errors.New("ansatz: dimension must be >= 1")

	// ErrPointLengthMismatch is returned when a point slice is shorter than
	// the space's dimension.
	ErrPointLengthMismatch = errors.New("ansatz: point slice shorter than dimension")

	// ErrBufferUndersize is returned when an output or scratch buffer is
	// smaller than the minimum the operation requires.
	ErrBufferUndersize = errors.New("ansatz: buffer smaller than required minimum")
)
