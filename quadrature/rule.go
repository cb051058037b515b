package quadrature

// Rule1D is the "quadrature base" external collaborator named in spec
// section 6: parallel nodes and weights slices for a one-dimensional
// rule on [-1, 1].
type Rule1D struct {
	Nodes   []float64
	Weights []float64
}

// Rule is a D-dimensional quadrature rule: Points holds one
// Dim-length coordinate slice per quadrature point, parallel to
// Weights.
type Rule struct {
	Dim     int
	Points  [][]float64
	Weights []float64
}

// OuterProduct builds the D-fold tensor-product quadrature rule from a
// 1D base rule: the quadrature points are the cartesian product of the
// base nodes, and each point's weight is the product of the
// corresponding 1D weights.
func OuterProduct(base Rule1D, dim int) (Rule, error) {
	if dim < 1 {
		return Rule{}, ErrDimensionTooSmall
	}
	if len(base.Nodes) == 0 || len(base.Nodes) != len(base.Weights) {
		return Rule{}, ErrMismatchedRule
	}

	points := [][]float64{{}}
	weights := []float64{1}
	for axis := 0; axis < dim; axis++ {
		nextPoints := make([][]float64, 0, len(points)*len(base.Nodes))
		nextWeights := make([]float64, 0, len(weights)*len(base.Nodes))
		for pi, p := range points {
			for ni, node := range base.Nodes {
				np := make([]float64, len(p)+1)
				copy(np, p)
				np[len(p)] = node
				nextPoints = append(nextPoints, np)
				nextWeights = append(nextWeights, weights[pi]*base.Weights[ni])
			}
		}
		points, weights = nextPoints, nextWeights
	}

	return Rule{Dim: dim, Points: points, Weights: weights}, nil
}
