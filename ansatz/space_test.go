package ansatz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/femtopo/ansatz"
)

func TestPolynomial_EvaluateAndDerivative(t *testing.T) {
	p := ansatz.Polynomial{1, 2, 3} // 1 + 2x + 3x^2
	assert.InDelta(t, 1.0, p.Evaluate(0), 1e-12)
	assert.InDelta(t, 6.0, p.Evaluate(1), 1e-12)

	d := p.Derivative()
	_, ok := d.(ansatz.Polynomial)
	assert.True(t, ok, "derivative of a Polynomial must be a Polynomial")
	assert.InDelta(t, 2.0, d.Evaluate(0), 1e-12) // 2 + 6x at x=0
	assert.InDelta(t, 8.0, d.Evaluate(1), 1e-12) // 2 + 6x at x=1
}

func TestSpace_Size1D(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, space.Size())
}

func TestSpace_Size2D(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, space.Size())
}

// TestSpace_Evaluate_Endpoints checks that the bilinear basis reduces to a
// single corner function at the four corners of [-1,1]^2.
func TestSpace_Evaluate_Endpoints(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 2)
	require.NoError(t, err)

	scratch := space.NewScratch()
	out := make([]float64, space.Size())

	require.NoError(t, space.Evaluate([]float64{-1, -1}, scratch, out))
	// N_{0,0} = phi0(x)*phi0(y) = 1 at (-1,-1); all else vanish.
	assert.InDelta(t, 1.0, out[0], 1e-12)
	for m := 1; m < 4; m++ {
		assert.InDelta(t, 0.0, out[m], 1e-12)
	}

	require.NoError(t, space.Evaluate([]float64{1, 1}, scratch, out))
	assert.InDelta(t, 1.0, out[3], 1e-12)
}

// TestSpace_MultiIndex checks the row-major (i0 fastest) enumeration.
func TestSpace_MultiIndex(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 2)
	require.NoError(t, err)

	idx := make([]int, 2)
	require.NoError(t, space.MultiIndex(0, idx))
	assert.Equal(t, []int{0, 0}, idx)
	require.NoError(t, space.MultiIndex(1, idx))
	assert.Equal(t, []int{1, 0}, idx)
	require.NoError(t, space.MultiIndex(2, idx))
	assert.Equal(t, []int{0, 1}, idx)
	require.NoError(t, space.MultiIndex(3, idx))
	assert.Equal(t, []int{1, 1}, idx)
}

// TestSpace_EvaluateDerivative_Linear1D checks dN/dx for the 1D linear
// basis, which is constant: dphi0/dx = -1/2, dphi1/dx = +1/2.
func TestSpace_EvaluateDerivative_Linear1D(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 1)
	require.NoError(t, err)

	scratch := space.NewScratch()
	out := make([]float64, space.Size()*space.Dim())
	require.NoError(t, space.EvaluateDerivative([]float64{0.25}, scratch, out))
	assert.InDelta(t, -0.5, out[0], 1e-12)
	assert.InDelta(t, 0.5, out[1], 1e-12)
}

// TestSpace_UndersizedBuffers exercises the BufferUndersize error kind.
func TestSpace_UndersizedBuffers(t *testing.T) {
	basis := ansatz.LinearLagrangeBasis()
	space, err := ansatz.NewSpace(basis, 2)
	require.NoError(t, err)

	scratch := space.NewScratch()
	tooSmall := make([]float64, 1)
	err = space.Evaluate([]float64{0, 0}, scratch, tooSmall)
	assert.ErrorIs(t, err, ansatz.ErrBufferUndersize)
}

// TestNewSpace_Errors covers construction-time domain errors.
func TestNewSpace_Errors(t *testing.T) {
	_, err := ansatz.NewSpace(nil, 2)
	assert.ErrorIs(t, err, ansatz.ErrEmptyBasis)

	_, err = ansatz.NewSpace(ansatz.LinearLagrangeBasis(), 0)
	assert.ErrorIs(t, err, ansatz.ErrDimensionTooSmall)
}
