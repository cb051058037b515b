// Package quadrature composes one-dimensional quadrature rules into
// outer-product rules over a D-dimensional reference hypercube, and
// integrates an integrand.Vector against them. Generating the
// underlying 1D rule is, per the core specification, an external
// collaborator's job; GaussLegendre is offered only as an optional
// convenience for callers who don't already have one, built via the
// Golub-Welsch eigenvalue method on gonum's symmetric eigendecomposition.
//
// Errors returned by this package wrap one of:
//
//	ErrDimensionTooSmall
//	ErrMismatchedRule
//	ErrEigenFailed
package quadrature
