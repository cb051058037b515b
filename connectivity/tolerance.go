package connectivity

import "gonum.org/v1/gonum/floats/scalar"

// Tolerance is the absolute/relative comparison the Build algorithm uses
// to decide whether two sampled basis-function values coincide, and
// whether a sampled value is indistinguishable from zero (vanishing).
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is a reasonable tolerance for double-precision
// tensor-product polynomial bases sampled on [-1, 1].
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: 1e-9, Rel: 1e-9}
}

// Equal reports whether a and b agree within this tolerance, via
// scalar.EqualWithinAbsOrRel.
func (t Tolerance) Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, t.Abs, t.Rel)
}

// Vanishes reports whether v is indistinguishable from zero.
func (t Tolerance) Vanishes(v float64) bool {
	return t.Equal(v, 0)
}
