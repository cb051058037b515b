package quadrature

import "errors"

// Sentinel errors for the quadrature package.
var (
	// ErrDimensionTooSmall is returned when a requested dimension or node
	// count is < 1.
	ErrDimensionTooSmall = errors.New("quadrature: dimension must be >= 1")

	// ErrMismatchedRule is returned when a 1D rule's nodes and weights
	// slices differ in length, or either is empty.
	ErrMismatchedRule = errors.New("quadrature: rule nodes/weights length mismatch")

	// ErrEigenFailed is returned when GaussLegendre's Jacobi-matrix
	// eigendecomposition fails to converge.
	ErrEigenFailed = errors.New("quadrature: eigendecomposition did not converge")
)
