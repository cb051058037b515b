package integrand

import "math"

// Vector is a reference-domain integrand: a fixed-size vector of values
// evaluated at a point in [-1,1]^D, e.g. the flattened n^D x n^D local
// stiffness block produced from an ansatz.Space's basis values and
// derivatives.
type Vector interface {
	// MinSize reports the minimum length an Evaluate output buffer must
	// have.
	MinSize() int

	// Evaluate writes this integrand's value at point into out.
	Evaluate(point []float64, out []float64) error
}

// Jacobian is a spatial transform's Jacobian, exposing only what a
// Transformed integrand needs: the determinant at a point.
type Jacobian interface {
	EvaluateDeterminant(point []float64) (float64, error)
}

// Transformed composes a reference integrand with a Jacobian-bearing
// spatial transform: it evaluates Reference, then scales every
// component by |det J(point)|.
type Transformed struct {
	Reference Vector
	Jacobian  Jacobian
}

// MinSize delegates to the reference integrand.
func (t *Transformed) MinSize() int {
	return t.Reference.MinSize()
}

// Evaluate writes |det J(point)| * Reference(point) into out.
func (t *Transformed) Evaluate(point []float64, out []float64) error {
	n := t.MinSize()
	if len(out) < n {
		return ErrBufferUndersize
	}
	if err := t.Reference.Evaluate(point, out); err != nil {
		return err
	}
	detJ, err := t.Jacobian.EvaluateDeterminant(point)
	if err != nil {
		return err
	}
	scale := math.Abs(detJ)
	for i := 0; i < n; i++ {
		out[i] *= scale
	}
	return nil
}
