// Package meshgraph implements the mesh-adjacency graph the assembler
// traverses: a directed graph parameterized by vertex-payload and
// edge-payload types, where vertices and edges carry distinct
// strongly-typed identifiers and each vertex maintains the set of edge
// ids incident to it.
//
// Unlike a general-purpose graph library, Graph enforces the narrow set
// of coherence invariants the assembler depends on: every incident edge
// id refers to an edge actually present in the graph, every edge's
// endpoints are present (auto-created with a zero payload if missing),
// and erasing a vertex cascades to its incident edges.
//
// Per the concurrency model this package implements (single-threaded
// per operation, no hidden shared mutable state), Graph is not
// internally synchronized; a caller sharing one across goroutines must
// provide its own external locking.
//
// Errors returned by this package wrap one of:
//
//	ErrVertexNonEmptyIncidentSet
package meshgraph
