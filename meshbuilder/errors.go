package meshbuilder

import "errors"

// ErrTooFewCells is returned when a requested chain length or grid
// dimension is too small to form a single cell.
var ErrTooFewCells = errors.New("meshbuilder: too few cells requested")
