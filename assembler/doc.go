// Package assembler performs the graph-driven degree-of-freedom
// assembly: a breadth-first traversal of a meshgraph.Graph that, using a
// caller-supplied DoFCounter and DoFMatcher (themselves typically backed
// by a connectivity.Map), produces a per-cell table of global DoF
// indices and a CSR sparsity pattern for the assembled operator.
//
// The Assembler owns its DoF table exclusively; nothing outside this
// package mutates it. Global DoF ids are densely packed starting at the
// caller-supplied base. DoFs/Items read the table forward (vertex ->
// its global ids); VertexIDs reads it in reverse (global id -> every
// vertex/local-slot that carries it).
//
// Errors returned by this package wrap one of:
//
//	ErrSelfLoopUnsupported
//	ErrLocalIndexOutOfRange
//
// or are returned as a *DoFReconciliationError.
package assembler
