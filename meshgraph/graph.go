package meshgraph

import "fmt"

// Graph is a directed graph of cells (vertices) and shared faces
// (edges), parameterized by vertex-payload type V and edge-payload type
// E. The graph exclusively owns its vertices and edges; all
// cross-references between them are ids, never pointers, so there is no
// ownership cycle between a vertex's incident set and an edge's
// endpoints.
type Graph[V any, E any] struct {
	vertices map[VertexID]*Vertex[V]
	edges    map[EdgeID]*Edge[E]

	// order/edgeOrder preserve insertion order so Vertices/Edges, and in
	// turn the assembler's BFS start vertex, are deterministic.
	order     []VertexID
	edgeOrder []EdgeID
}

// New builds an empty Graph.
func New[V any, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: make(map[VertexID]*Vertex[V]),
		edges:    make(map[EdgeID]*Edge[E]),
	}
}

// Empty reports whether the graph has no vertices.
func (g *Graph[V, E]) Empty() bool {
	return len(g.vertices) == 0
}

// Order returns the number of vertices.
func (g *Graph[V, E]) Order() int {
	return len(g.vertices)
}

// Size returns the number of edges.
func (g *Graph[V, E]) Size() int {
	return len(g.edges)
}

// InsertVertex stores v, returning a pointer to the stored copy. v's
// Incident set must be empty — the graph is the only party allowed to
// populate it, via InsertEdge. If v.ID is already present and overwrite
// is false, this is a no-op that returns the existing vertex; with
// overwrite true, the existing vertex (and everything incident to it) is
// erased first.
func (g *Graph[V, E]) InsertVertex(v Vertex[V], overwrite bool) (*Vertex[V], error) {
	if len(v.Incident) > 0 {
		return nil, fmt.Errorf("meshgraph: insert vertex %d: %w", v.ID, ErrVertexNonEmptyIncidentSet)
	}
	if existing, ok := g.vertices[v.ID]; ok {
		if !overwrite {
			return existing, nil
		}
		g.EraseVertex(v.ID)
	}
	return g.ensureVertex(v.ID, v.Payload), nil
}

// ensureVertex returns the vertex at id, creating it with payload if
// absent. It never overwrites an existing vertex's payload.
func (g *Graph[V, E]) ensureVertex(id VertexID, payload V) *Vertex[V] {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex[V]{ID: id, Payload: payload, Incident: make(map[EdgeID]struct{})}
	g.vertices[id] = v
	g.order = append(g.order, id)
	return v
}

// InsertEdge stores e, auto-creating its endpoints with a zero payload
// if they do not already exist. If e.ID is already present and
// overwrite is false, this is a no-op that returns the existing edge;
// with overwrite true, the existing edge is erased (clearing it from
// both endpoints' incident sets) before the new one is stored.
func (g *Graph[V, E]) InsertEdge(e Edge[E], overwrite bool) (*Edge[E], error) {
	if existing, ok := g.edges[e.ID]; ok {
		if !overwrite {
			return existing, nil
		}
		g.EraseEdge(e.ID)
	}

	var zero V
	src := g.ensureVertex(e.Source, zero)
	tgt := g.ensureVertex(e.Target, zero)

	stored := &Edge[E]{ID: e.ID, Source: e.Source, Target: e.Target, Payload: e.Payload}
	g.edges[e.ID] = stored
	g.edgeOrder = append(g.edgeOrder, e.ID)
	src.Incident[e.ID] = struct{}{}
	tgt.Incident[e.ID] = struct{}{}
	return stored, nil
}

// EraseVertex removes the vertex at id, cascading to erase every edge
// incident to it. It reports whether a vertex was actually removed.
func (g *Graph[V, E]) EraseVertex(id VertexID) bool {
	v, ok := g.vertices[id]
	if !ok {
		return false
	}
	for eid := range v.Incident {
		g.EraseEdge(eid)
	}
	delete(g.vertices, id)
	g.order = removeVertexID(g.order, id)
	return true
}

// EraseEdge removes the edge at id, clearing it from both endpoints'
// incident sets. It reports whether an edge was actually removed.
func (g *Graph[V, E]) EraseEdge(id EdgeID) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	if src, ok := g.vertices[e.Source]; ok {
		delete(src.Incident, id)
	}
	if tgt, ok := g.vertices[e.Target]; ok {
		delete(tgt.Incident, id)
	}
	delete(g.edges, id)
	g.edgeOrder = removeEdgeID(g.edgeOrder, id)
	return true
}

// FindVertex returns the vertex at id, if present.
func (g *Graph[V, E]) FindVertex(id VertexID) (*Vertex[V], bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// FindEdge returns the edge at id, if present.
func (g *Graph[V, E]) FindEdge(id EdgeID) (*Edge[E], bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Vertices returns every vertex, in insertion order.
func (g *Graph[V, E]) Vertices() []*Vertex[V] {
	out := make([]*Vertex[V], 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}
	return out
}

// Edges returns every edge, in insertion order.
func (g *Graph[V, E]) Edges() []*Edge[E] {
	out := make([]*Edge[E], 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

func removeVertexID(order []VertexID, id VertexID) []VertexID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func removeEdgeID(order []EdgeID, id EdgeID) []EdgeID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
