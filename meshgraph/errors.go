package meshgraph

import "errors"

// Sentinel errors for the meshgraph package.
var (
	// ErrVertexNonEmptyIncidentSet is returned when InsertVertex is given
	// a Vertex whose Incident set is already populated; a freshly
	// inserted vertex must start with no incident edges.
	ErrVertexNonEmptyIncidentSet = errors.New("meshgraph: inserted vertex must have an empty incident set")
)
