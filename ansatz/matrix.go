package ansatz

import "gonum.org/v1/gonum/mat"

// DerivativeMatrix is a convenience wrapper around EvaluateDerivative for
// callers who want the Jacobian J in R^{Size() x Dim()} as a *mat.Dense
// rather than a flat row-major slice. It allocates a fresh scratch buffer
// and matrix on every call, so it is not meant for the hot assembly path —
// EvaluateDerivative remains the allocation-free entry point for that.
func (s *Space) DerivativeMatrix(point []float64) (*mat.Dense, error) {
	flat := make([]float64, s.size*s.dim)
	if err := s.EvaluateDerivative(point, s.NewScratch(), flat); err != nil {
		return nil, err
	}
	return mat.NewDense(s.size, s.dim, flat), nil
}
