package assembler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/femtopo/meshgraph"
)

// ErrSelfLoopUnsupported is returned when a traversed edge's source and
// target are the same vertex. Per the design notes this spec follows,
// self-loops are treated as ill-formed input rather than silently
// mishandled by an edge's "other end" computation.
var ErrSelfLoopUnsupported = errors.New("assembler: self-loop edges are not supported")

// ErrLocalIndexOutOfRange is returned when a DoFMatcher emits a local
// index outside [0, dofCounter(payload)) for the cell it names.
var ErrLocalIndexOutOfRange = errors.New("assembler: local index out of range")

// DoFReconciliationError reports that a matcher asserted a pair (i, j)
// across an edge whose two sides had already been assigned different
// global DoF ids earlier in the traversal.
type DoFReconciliationError struct {
	Edge         meshgraph.EdgeID
	Source       meshgraph.VertexID
	Target       meshgraph.VertexID
	LocalSource  int
	LocalTarget  int
	GlobalSource uint64
	GlobalTarget uint64
}

func (e *DoFReconciliationError) Error() string {
	return fmt.Sprintf(
		"assembler: edge %d: vertex %d local %d has global dof %d, vertex %d local %d has global dof %d",
		e.Edge, e.Source, e.LocalSource, e.GlobalSource, e.Target, e.LocalTarget, e.GlobalTarget,
	)
}
