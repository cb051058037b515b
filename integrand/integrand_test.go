package integrand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/femtopo/integrand"
)

type constVector struct {
	values []float64
}

func (c constVector) MinSize() int { return len(c.values) }
func (c constVector) Evaluate(point []float64, out []float64) error {
	copy(out, c.values)
	return nil
}

type constJacobian struct {
	det float64
}

func (c constJacobian) EvaluateDeterminant(point []float64) (float64, error) {
	return c.det, nil
}

func TestTransformed_ScalesByAbsDeterminant(t *testing.T) {
	ti := &integrand.Transformed{
		Reference: constVector{values: []float64{1, 2, 3}},
		Jacobian:  constJacobian{det: -2},
	}

	out := make([]float64, 3)
	require.NoError(t, ti.Evaluate([]float64{0, 0}, out))
	assert.Equal(t, []float64{2, 4, 6}, out)
}

func TestTransformed_UndersizedBuffer(t *testing.T) {
	ti := &integrand.Transformed{
		Reference: constVector{values: []float64{1, 2, 3}},
		Jacobian:  constJacobian{det: 1},
	}
	err := ti.Evaluate([]float64{0, 0}, make([]float64, 2))
	assert.ErrorIs(t, err, integrand.ErrBufferUndersize)
}
