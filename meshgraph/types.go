package meshgraph

// VertexID is a strongly-typed vertex identifier, distinct from EdgeID
// so the two id spaces can never be confused at a call site.
type VertexID uint64

// EdgeID is a strongly-typed edge identifier.
type EdgeID uint64

// Vertex is a mesh cell: a payload of type V plus the set of edge ids
// incident to it. The graph itself is the sole owner of the Incident
// set; callers should treat a *Vertex returned from the graph as
// read-only except through the graph's own mutating operations.
type Vertex[V any] struct {
	ID       VertexID
	Payload  V
	Incident map[EdgeID]struct{}
}

// Edge connects Source to Target and carries a payload of type E — in
// practice, for the assembler, the pair of OrientedBoundary values the
// two cells present to each other across this shared face.
type Edge[E any] struct {
	ID      EdgeID
	Source  VertexID
	Target  VertexID
	Payload E
}
