package ansatz

import "fmt"

// Space is the D-fold tensor product of a one-dimensional Basis: a scalar
// basis of dimension D whose functions are indexed by a multi-index
// (i0, ..., i_{D-1}) with i_k in [0, n), enumerated row-major (i0 varies
// fastest). Its Size is n^D.
type Space struct {
	basis      Basis
	derivBasis Basis
	dim        int
	n          int
	size       int
}

// NewSpace builds the tensor-product ansatz space of dimension dim over
// basis. It precomputes each basis function's derivative once, so that
// Evaluate/EvaluateDerivative never call ScalarFunction.Derivative on the
// hot path.
func NewSpace(basis Basis, dim int) (*Space, error) {
	if basis.Size() == 0 {
		return nil, ErrEmptyBasis
	}
	if dim < 1 {
		return nil, ErrDimensionTooSmall
	}

	n := basis.Size()
	size := 1
	for i := 0; i < dim; i++ {
		size *= n
	}

	return &Space{
		basis:      basis,
		derivBasis: basis.Derivatives(),
		dim:        dim,
		n:          n,
		size:       size,
	}, nil
}

// Dim returns D.
func (s *Space) Dim() int { return s.dim }

// N returns n, the size of the underlying one-dimensional basis.
func (s *Space) N() int { return s.n }

// Size returns n^D, the number of tensor-product basis functions.
func (s *Space) Size() int { return s.size }

// EvalScratch is the caller-owned scratch buffer Evaluate and
// EvaluateDerivative write intermediate per-axis values into. Allocate one
// per goroutine (or one per call site reused across calls) with
// NewEvalScratch; Space itself holds no mutable per-call state.
type EvalScratch struct {
	idx   []int
	vals  [][]float64
	dvals [][]float64
}

// NewEvalScratch allocates a scratch buffer sized for a space of the given
// dimension and one-dimensional basis size.
func NewEvalScratch(dim, n int) *EvalScratch {
	vals := make([][]float64, dim)
	dvals := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		vals[i] = make([]float64, n)
		dvals[i] = make([]float64, n)
	}
	return &EvalScratch{idx: make([]int, dim), vals: vals, dvals: dvals}
}

// NewScratch allocates a scratch buffer sized for this space.
func (s *Space) NewScratch() *EvalScratch {
	return NewEvalScratch(s.dim, s.n)
}

func (s *Space) checkScratch(scratch *EvalScratch) error {
	if scratch == nil || len(scratch.idx) < s.dim || len(scratch.vals) < s.dim || len(scratch.dvals) < s.dim {
		return fmt.Errorf("ansatz: scratch undersized for dim=%d: %w", s.dim, ErrBufferUndersize)
	}
	for i := 0; i < s.dim; i++ {
		if len(scratch.vals[i]) < s.n || len(scratch.dvals[i]) < s.n {
			return fmt.Errorf("ansatz: scratch undersized for n=%d: %w", s.n, ErrBufferUndersize)
		}
	}
	return nil
}

// MultiIndex decodes the row-major function index m into its per-axis
// component indices, i0 varying fastest, writing into out[:Dim()].
func (s *Space) MultiIndex(m int, out []int) error {
	if len(out) < s.dim {
		return ErrBufferUndersize
	}
	for k := 0; k < s.dim; k++ {
		out[k] = m % s.n
		m /= s.n
	}
	return nil
}

// fillAxisValues populates scratch.vals/dvals with phi_i(point[axis]) and
// phi_i'(point[axis]) for every axis and every basis index i.
func (s *Space) fillAxisValues(point []float64, scratch *EvalScratch) {
	for axis := 0; axis < s.dim; axis++ {
		coord := point[axis]
		row, drow := scratch.vals[axis], scratch.dvals[axis]
		for i := 0; i < s.n; i++ {
			row[i] = s.basis[i].Evaluate(coord)
			drow[i] = s.derivBasis[i].Evaluate(coord)
		}
	}
}

// Evaluate writes N_m(point) for every m in [0, Size()) into out.
// point must have at least Dim() coordinates; out must have at least
// Size() entries. scratch must come from NewScratch (or NewEvalScratch
// with matching dimensions). No allocation occurs inside this call.
func (s *Space) Evaluate(point []float64, scratch *EvalScratch, out []float64) error {
	if len(point) < s.dim {
		return ErrPointLengthMismatch
	}
	if len(out) < s.size {
		return ErrBufferUndersize
	}
	if err := s.checkScratch(scratch); err != nil {
		return err
	}

	s.fillAxisValues(point, scratch)
	for m := 0; m < s.size; m++ {
		rem := m
		val := 1.0
		for axis := 0; axis < s.dim; axis++ {
			i := rem % s.n
			rem /= s.n
			val *= scratch.vals[axis][i]
		}
		out[m] = val
	}
	return nil
}

// EvaluateDerivative writes the row-major Jacobian J in R^{Size() x Dim()}
// into out: out[m*Dim()+k] = dN_m/dx_k at point. point must have at least
// Dim() coordinates; out must have at least Size()*Dim() entries.
func (s *Space) EvaluateDerivative(point []float64, scratch *EvalScratch, out []float64) error {
	if len(point) < s.dim {
		return ErrPointLengthMismatch
	}
	if len(out) < s.size*s.dim {
		return ErrBufferUndersize
	}
	if err := s.checkScratch(scratch); err != nil {
		return err
	}

	s.fillAxisValues(point, scratch)
	idx := scratch.idx
	for m := 0; m < s.size; m++ {
		if err := s.MultiIndex(m, idx); err != nil {
			return err
		}
		for k := 0; k < s.dim; k++ {
			val := 1.0
			for axis := 0; axis < s.dim; axis++ {
				if axis == k {
					val *= scratch.dvals[axis][idx[axis]]
				} else {
					val *= scratch.vals[axis][idx[axis]]
				}
			}
			out[m*s.dim+k] = val
		}
	}
	return nil
}
