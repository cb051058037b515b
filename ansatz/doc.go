// Package ansatz implements the scalar basis and tensor-product ansatz
// space (component C2): given an ordered one-dimensional basis
// {phi_0, ..., phi_{n-1}}, it forms the D-fold tensor-product space whose
// functions are indexed by a row-major multi-index (i0 varies fastest), and
// evaluates those functions and their partial derivatives at a point.
//
// Evaluation never allocates on its own: Space.Evaluate and
// Space.EvaluateDerivative take a caller-owned *EvalScratch, so repeated
// calls at distinct points cost no garbage. This is the "prefer explicit
// parameters over thread-local caches" resolution recorded in DESIGN.md.
//
// Errors
//
//   - ErrEmptyBasis: a Space was built over a zero-length basis.
//   - ErrDimensionTooSmall: a Space's dimension was < 1.
//   - ErrPointLengthMismatch: a point slice shorter than the space's
//     dimension was passed to Evaluate/EvaluateDerivative.
//   - ErrBufferUndersize: an output or scratch buffer was smaller than the
//     minimum the space requires; callers can query that minimum up front
//     via Space.Size/Space.Dim.
package ansatz
