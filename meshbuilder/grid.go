package meshbuilder

import (
	"github.com/katalvlaran/femtopo/boundary"
	"github.com/katalvlaran/femtopo/meshgraph"
)

const minCells = 1

// FacePair names the two oriented boundaries a pair of neighboring
// cells present to each other across their shared face: Left is the
// face on the edge's source cell, Right the face on its target cell.
type FacePair struct {
	Left  boundary.OrientedBoundary
	Right boundary.OrientedBoundary
}

func identityFace(dim, axis int, sign boundary.Sign) boundary.OrientedBoundary {
	axes, err := boundary.NewIdentityOrientedAxes(dim)
	if err != nil {
		panic(err) // dim is caller-validated before this is ever called
	}
	id, err := boundary.NewBoundaryID(axis, sign)
	if err != nil {
		panic(err)
	}
	ob, err := boundary.NewOrientedBoundary(axes, id)
	if err != nil {
		panic(err)
	}
	return ob
}

// BuildChain builds a 1-D chain of n cells, vertex ids 0..n-1, with an
// edge i -> i+1 for each consecutive pair, payload FacePair{+x, -x} in
// the identity orientation -- scenario S4's mesh shape.
func BuildChain(n int) (*meshgraph.Graph[struct{}, FacePair], error) {
	if n < minCells {
		return nil, ErrTooFewCells
	}

	g := meshgraph.New[struct{}, FacePair]()
	posX := identityFace(1, 0, boundary.Positive)
	negX := identityFace(1, 0, boundary.Negative)

	for i := 0; i < n; i++ {
		if _, err := g.InsertVertex(meshgraph.Vertex[struct{}]{ID: meshgraph.VertexID(i)}, false); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n-1; i++ {
		edge := meshgraph.Edge[FacePair]{
			ID:      meshgraph.EdgeID(i),
			Source:  meshgraph.VertexID(i),
			Target:  meshgraph.VertexID(i + 1),
			Payload: FacePair{Left: posX, Right: negX},
		}
		if _, err := g.InsertEdge(edge, false); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildGrid builds a row-major rows x cols grid of cells, vertex id
// r*cols+c, with a right-neighbor edge ("+x"/"-x") for every (r,c) with
// c+1 < cols and an upper-neighbor edge ("+y"/"-y", row increasing in
// the +y direction) for every (r,c) with r+1 < rows -- scenario S5's
// mesh shape when called as BuildGrid(2, 3).
func BuildGrid(rows, cols int) (*meshgraph.Graph[struct{}, FacePair], error) {
	if rows < minCells || cols < minCells {
		return nil, ErrTooFewCells
	}

	g := meshgraph.New[struct{}, FacePair]()
	posX, negX := identityFace(2, 0, boundary.Positive), identityFace(2, 0, boundary.Negative)
	posY, negY := identityFace(2, 1, boundary.Positive), identityFace(2, 1, boundary.Negative)

	id := func(r, c int) meshgraph.VertexID {
		return meshgraph.VertexID(r*cols + c)
	}

	for i := 0; i < rows*cols; i++ {
		if _, err := g.InsertVertex(meshgraph.Vertex[struct{}]{ID: meshgraph.VertexID(i)}, false); err != nil {
			return nil, err
		}
	}

	var nextEdge meshgraph.EdgeID
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edge := meshgraph.Edge[FacePair]{
					ID:      nextEdge,
					Source:  id(r, c),
					Target:  id(r, c+1),
					Payload: FacePair{Left: posX, Right: negX},
				}
				if _, err := g.InsertEdge(edge, false); err != nil {
					return nil, err
				}
				nextEdge++
			}
			if r+1 < rows {
				edge := meshgraph.Edge[FacePair]{
					ID:      nextEdge,
					Source:  id(r, c),
					Target:  id(r+1, c),
					Payload: FacePair{Left: posY, Right: negY},
				}
				if _, err := g.InsertEdge(edge, false); err != nil {
					return nil, err
				}
				nextEdge++
			}
		}
	}
	return g, nil
}
