// Package femtopo is the topological/algebraic core of a higher-order
// finite-element preprocessor: it turns a mesh of axis-aligned
// hyperrectangular cells, each carrying a tensor-product ansatz space,
// into a compressed-sparse-row sparsity pattern for the global
// stiffness matrix, together with the per-cell bookkeeping needed to
// scatter local contributions into it.
//
// The module is organized as a small pipeline of packages, leaves
// first:
//
//	boundary      bit-packed oriented-face/orientation identifiers
//	ansatz        scalar bases and the tensor-product ansatz space
//	connectivity  discovers which local basis-function indices fuse
//	              across which pairs of oriented boundaries
//	meshgraph     the typed mesh-adjacency graph
//	assembler     graph-driven DoF numbering and CSR emission
//	integrand     reference-integrand + Jacobian-determinant composition
//	quadrature    outer-product quadrature and a Gauss-Legendre helper
//	meshbuilder   small deterministic mesh fixtures (chain, grid)
//
// Quadrature rule generation, concrete basis evaluation beyond the
// polynomial case, spatial transforms, linear-system solution, and file
// I/O are out of scope: this module only owns the connectivity-preserving
// DoF assembly pipeline connecting those external collaborators.
package femtopo
