// Package integrand composes a reference-domain vector-valued integrand
// with a Jacobian-bearing spatial transform: the transformed integrand
// evaluates the reference integrand at a point, then scales every
// component by the absolute value of the transform's Jacobian
// determinant at that point, per spec section 4.6.
//
// Errors returned by this package wrap one of:
//
//	ErrBufferUndersize
package integrand
