package meshbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/femtopo/meshbuilder"
	"github.com/katalvlaran/femtopo/meshgraph"
)

func TestBuildChain_ThreeCells(t *testing.T) {
	g, err := meshbuilder.BuildChain(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())

	v0, ok := g.FindVertex(0)
	require.True(t, ok)
	assert.Len(t, v0.Incident, 1)

	v1, ok := g.FindVertex(1)
	require.True(t, ok)
	assert.Len(t, v1.Incident, 2)
}

func TestBuildGrid_3x2(t *testing.T) {
	g, err := meshbuilder.BuildGrid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 7, g.Size())

	// Corner cell (0,0) has exactly two neighbors: right and above (+y).
	corner, ok := g.FindVertex(0)
	require.True(t, ok)
	assert.Len(t, corner.Incident, 2)

	// Interior-of-edge cell (0,1) has three neighbors: left, right, above (+y).
	mid, ok := g.FindVertex(1)
	require.True(t, ok)
	assert.Len(t, mid.Incident, 3)
}

func TestBuildChain_TooFewCells(t *testing.T) {
	_, err := meshbuilder.BuildChain(0)
	assert.ErrorIs(t, err, meshbuilder.ErrTooFewCells)
}

func TestBuildGrid_TooFewCells(t *testing.T) {
	_, err := meshbuilder.BuildGrid(0, 1)
	assert.ErrorIs(t, err, meshbuilder.ErrTooFewCells)
}

// sanity: ensure the payload carries the expected face orientation so a
// DoFMatcher can look connectivity up directly.
func TestBuildGrid_PayloadFaces(t *testing.T) {
	g, err := meshbuilder.BuildGrid(1, 2)
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, meshgraph.VertexID(0), edges[0].Source)
	assert.Equal(t, meshgraph.VertexID(1), edges[0].Target)
	assert.Equal(t, 0, edges[0].Payload.Left.Face.Axis())
}
