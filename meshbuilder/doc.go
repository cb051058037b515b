// Package meshbuilder provides small, deterministic mesh-graph
// constructors used as test fixtures and as a starting point for
// callers wiring up their own cell layouts: a 1-D chain of cells
// (BuildChain) and a row-major 2-D grid (BuildGrid), both in the
// identity OrientedAxes orientation throughout.
//
// Each constructor emits exactly the edges spec.md's worked scenarios
// describe: BuildChain is the S4 three-cell row, and BuildGrid(2, 3) is
// the S5 3x2 grid. Edge payloads are FacePair values naming the two
// OrientedBoundary faces the two endpoint cells present to each other,
// ready to be passed through a connectivity.Map lookup by an
// assembler.DoFMatcher.
//
// Errors returned by this package wrap one of:
//
//	ErrTooFewCells
package meshbuilder
