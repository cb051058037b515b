package quadrature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/femtopo/quadrature"
)

func TestGaussLegendre_TwoPoint(t *testing.T) {
	rule, err := quadrature.GaussLegendre(2)
	require.NoError(t, err)
	require.Len(t, rule.Nodes, 2)

	want := 1.0 / 1.7320508075688772 // 1/sqrt(3)
	got := rule.Nodes
	if got[0] > got[1] {
		got[0], got[1] = got[1], got[0]
	}
	assert.InDelta(t, -want, got[0], 1e-9)
	assert.InDelta(t, want, got[1], 1e-9)
	assert.InDelta(t, 1.0, rule.Weights[0], 1e-9)
	assert.InDelta(t, 1.0, rule.Weights[1], 1e-9)
}

func TestOuterProduct_2D(t *testing.T) {
	base, err := quadrature.GaussLegendre(2)
	require.NoError(t, err)

	rule, err := quadrature.OuterProduct(base, 2)
	require.NoError(t, err)
	assert.Len(t, rule.Points, 4)
	assert.Len(t, rule.Weights, 4)

	sum := 0.0
	for _, w := range rule.Weights {
		sum += w
	}
	assert.InDelta(t, 4.0, sum, 1e-9) // area of [-1,1]^2
}

func TestOuterProduct_Errors(t *testing.T) {
	_, err := quadrature.OuterProduct(quadrature.Rule1D{}, 0)
	assert.ErrorIs(t, err, quadrature.ErrDimensionTooSmall)

	_, err = quadrature.OuterProduct(quadrature.Rule1D{Nodes: []float64{1}}, 1)
	assert.ErrorIs(t, err, quadrature.ErrMismatchedRule)
}

type constIntegrand struct{}

func (constIntegrand) MinSize() int { return 1 }
func (constIntegrand) Evaluate(point []float64, out []float64) error {
	out[0] = 1
	return nil
}

func TestIntegrator_ConstantOverSquare(t *testing.T) {
	base, err := quadrature.GaussLegendre(3)
	require.NoError(t, err)
	rule, err := quadrature.OuterProduct(base, 2)
	require.NoError(t, err)

	it := quadrature.Integrator{Rule: rule}
	out := make([]float64, 1)
	require.NoError(t, it.Integrate(constIntegrand{}, out))
	assert.InDelta(t, 4.0, out[0], 1e-9)
}
