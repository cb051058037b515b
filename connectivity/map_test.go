package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/femtopo/ansatz"
	"github.com/katalvlaran/femtopo/boundary"
	"github.com/katalvlaran/femtopo/connectivity"
)

// TestBuild_1DLinear is scenario S2: a 1-D linear ansatz space has a
// single face pair per axis; "-x" identifies local index 0 with the
// neighbor's local index 1, and "+x" the reverse.
func TestBuild_1DLinear(t *testing.T) {
	space, err := ansatz.NewSpace(ansatz.LinearLagrangeBasis(), 1)
	require.NoError(t, err)

	// A 1-D face has no tangential axes, so a single sample point (the
	// face itself) suffices to exercise the outer-product-of-zero-axes
	// path.
	m, err := connectivity.Build(space, []float64{0}, connectivity.DefaultTolerance())
	require.NoError(t, err)

	axes, err := boundary.NewIdentityOrientedAxes(1)
	require.NoError(t, err)
	negX, err := boundary.NewBoundaryID(0, boundary.Negative)
	require.NoError(t, err)
	posX, err := boundary.NewBoundaryID(0, boundary.Positive)
	require.NoError(t, err)
	obNeg, err := boundary.NewOrientedBoundary(axes, negX)
	require.NoError(t, err)
	obPos, err := boundary.NewOrientedBoundary(axes, posX)
	require.NoError(t, err)

	pairs, err := m.GetPairs(obNeg, obPos)
	require.NoError(t, err)
	assert.ElementsMatch(t, []connectivity.IndexPair{{Left: 0, Right: 1}}, pairs)

	reverse, err := m.GetPairs(obPos, obNeg)
	require.NoError(t, err)
	assert.ElementsMatch(t, []connectivity.IndexPair{{Left: 1, Right: 0}}, reverse)
}

// TestBuild_2DBilinear is scenario S3: a 2-D bilinear ansatz space
// (N_{i,j} = phi_i(x) phi_j(y), i varying fastest) identifies two index
// pairs per face, and every face has exactly two pairs.
func TestBuild_2DBilinear(t *testing.T) {
	space, err := ansatz.NewSpace(ansatz.LinearLagrangeBasis(), 2)
	require.NoError(t, err)

	samples := []float64{-0.5, 0.3}
	m, err := connectivity.Build(space, samples, connectivity.DefaultTolerance())
	require.NoError(t, err)

	axes, err := boundary.NewIdentityOrientedAxes(2)
	require.NoError(t, err)

	face := func(axis int, sign boundary.Sign) boundary.OrientedBoundary {
		id, err := boundary.NewBoundaryID(axis, sign)
		require.NoError(t, err)
		ob, err := boundary.NewOrientedBoundary(axes, id)
		require.NoError(t, err)
		return ob
	}

	negX, posX := face(0, boundary.Negative), face(0, boundary.Positive)
	negY, posY := face(1, boundary.Negative), face(1, boundary.Positive)

	pairsNegX, err := m.GetPairs(negX, posX)
	require.NoError(t, err)
	assert.ElementsMatch(t, []connectivity.IndexPair{{Left: 0, Right: 1}, {Left: 2, Right: 3}}, pairsNegX)

	// Querying "+y" against "-y" (the order a mesh assembler would use
	// when the +y face is the one being matched) returns the transpose
	// of the stored (-y, +y) pairs.
	pairsPosY, err := m.GetPairs(posY, negY)
	require.NoError(t, err)
	assert.ElementsMatch(t, []connectivity.IndexPair{{Left: 2, Right: 0}, {Left: 3, Right: 1}}, pairsPosY)

	for _, pair := range [][2]boundary.OrientedBoundary{{negX, posX}, {negY, posY}} {
		assert.Equal(t, 2, m.GetPairCount(pair[0], pair[1]))
	}
}

// TestBuild_EmptySamples checks that an empty sample set yields an empty
// map rather than an error, and that lookups against it report
// ErrPairNotFound.
func TestBuild_EmptySamples(t *testing.T) {
	space, err := ansatz.NewSpace(ansatz.LinearLagrangeBasis(), 2)
	require.NoError(t, err)

	m, err := connectivity.Build(space, nil, connectivity.DefaultTolerance())
	require.NoError(t, err)

	axes, err := boundary.NewIdentityOrientedAxes(2)
	require.NoError(t, err)
	negX, _ := boundary.NewBoundaryID(0, boundary.Negative)
	posX, _ := boundary.NewBoundaryID(0, boundary.Positive)
	obNeg, err := boundary.NewOrientedBoundary(axes, negX)
	require.NoError(t, err)
	obPos, err := boundary.NewOrientedBoundary(axes, posX)
	require.NoError(t, err)

	_, err = m.GetPairs(obNeg, obPos)
	assert.ErrorIs(t, err, connectivity.ErrPairNotFound)
	assert.Equal(t, 0, m.GetPairCount(obNeg, obPos))
}
