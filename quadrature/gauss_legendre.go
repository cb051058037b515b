package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussLegendre builds the n-point Gauss-Legendre rule on [-1, 1] via
// the Golub-Welsch method: the nodes are the eigenvalues of the
// symmetric tridiagonal Jacobi matrix with zero diagonal and off-diagonal
// entries b_k = k / sqrt(4k^2 - 1), and each weight is 2 times the
// square of the first component of the corresponding eigenvector.
//
// This is offered purely as a convenience; nothing in this module
// depends on it, since rule generation is an external collaborator's
// responsibility per the core specification.
func GaussLegendre(n int) (Rule1D, error) {
	if n < 1 {
		return Rule1D{}, ErrDimensionTooSmall
	}
	if n == 1 {
		return Rule1D{Nodes: []float64{0}, Weights: []float64{2}}, nil
	}

	data := make([]float64, n*n)
	for k := 1; k < n; k++ {
		b := float64(k) / math.Sqrt(4*float64(k*k)-1)
		data[(k-1)*n+k] = b
		data[k*n+(k-1)] = b
	}
	jacobi := mat.NewSymDense(n, data)

	var eig mat.EigenSym
	if ok := eig.Factorize(jacobi, true); !ok {
		return Rule1D{}, ErrEigenFailed
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	nodes := make([]float64, n)
	weights := make([]float64, n)
	copy(nodes, values)
	for i := 0; i < n; i++ {
		v0 := vectors.At(0, i)
		weights[i] = 2 * v0 * v0
	}

	return Rule1D{Nodes: nodes, Weights: weights}, nil
}
