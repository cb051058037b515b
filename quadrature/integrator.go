package quadrature

import "github.com/katalvlaran/femtopo/integrand"

// Integrator evaluates an integrand.Vector at every point of Rule and
// accumulates the weighted sum into the caller's output buffer.
type Integrator struct {
	Rule Rule
}

// Integrate writes sum_q Rule.Weights[q] * fn(Rule.Points[q]) into out.
// out must have at least fn.MinSize() entries; a fresh scratch buffer of
// that size is allocated per call for the per-point evaluation.
func (it Integrator) Integrate(fn integrand.Vector, out []float64) error {
	n := fn.MinSize()
	if len(out) < n {
		return integrand.ErrBufferUndersize
	}
	for i := 0; i < n; i++ {
		out[i] = 0
	}

	buf := make([]float64, n)
	for q, point := range it.Rule.Points {
		if err := fn.Evaluate(point, buf); err != nil {
			return err
		}
		w := it.Rule.Weights[q]
		for i := 0; i < n; i++ {
			out[i] += w * buf[i]
		}
	}
	return nil
}
