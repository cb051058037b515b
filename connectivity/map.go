package connectivity

import (
	"github.com/katalvlaran/femtopo/ansatz"
	"github.com/katalvlaran/femtopo/boundary"
)

// IndexPair names two tensor-product basis function indices (Left on one
// oriented boundary, Right on the opposing one) whose values coincide
// across every sample point on the shared face.
type IndexPair struct {
	Left  int
	Right int
}

type pairKey struct {
	left  boundary.OrientedBoundary
	right boundary.OrientedBoundary
}

// Map is the discovered connectivity table: for any pair of oriented
// boundaries that Build visited, the list of local basis-function index
// pairs that must be identified when two cells meet at that pair of
// faces.
type Map struct {
	dim   int
	pairs map[pairKey][]IndexPair
}

// Dim returns the ansatz space dimension this map was built for.
func (m *Map) Dim() int { return m.dim }

// Build discovers the connectivity map for a tensor-product ansatz
// space. It enumerates every 2^D axis-reflection orientation and, within
// each, every face-normal axis, pairing the negative and positive faces
// of that orientation. For each pair it samples the space over the
// outer product of samples across the tangential axes, with the
// face-normal coordinate fixed to the face's local sign, and records
// which (left, right) basis index pairs agree at every sample and are
// non-vanishing on both sides.
//
// An empty samples slice, or a space of size zero, yields an empty map
// rather than an error.
func Build(space *ansatz.Space, samples []float64, tol Tolerance) (*Map, error) {
	dim := space.Dim()
	m := &Map{dim: dim, pairs: make(map[pairKey][]IndexPair)}
	if len(samples) == 0 || space.Size() == 0 {
		return m, nil
	}

	for mask := 0; mask < (1 << uint(dim)); mask++ {
		axes, err := boundary.NewIdentityOrientedAxes(dim)
		if err != nil {
			return nil, err
		}
		for i := 0; i < dim; i++ {
			sign := boundary.Positive
			if mask&(1<<uint(i)) != 0 {
				sign = boundary.Negative
			}
			id, err := boundary.NewBoundaryID(i, sign)
			if err != nil {
				return nil, err
			}
			if err := axes.Set(i, id); err != nil {
				return nil, err
			}
		}

		for faceAxis := 0; faceAxis < dim; faceAxis++ {
			negFace, err := boundary.NewBoundaryID(faceAxis, boundary.Negative)
			if err != nil {
				return nil, err
			}
			posFace, err := boundary.NewBoundaryID(faceAxis, boundary.Positive)
			if err != nil {
				return nil, err
			}
			obL, err := boundary.NewOrientedBoundary(axes, negFace)
			if err != nil {
				return nil, err
			}
			obR, err := boundary.NewOrientedBoundary(axes, posFace)
			if err != nil {
				return nil, err
			}
			if err := m.fillPair(space, samples, tol, obL, obR); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// fillPair evaluates the space on every sample of the shared face between
// obL and obR and records the surviving index pairs, unless this (or the
// transposed) key has already been filled.
func (m *Map) fillPair(space *ansatz.Space, samples []float64, tol Tolerance, obL, obR boundary.OrientedBoundary) error {
	if m.hasEitherOrder(obL, obR) {
		return nil
	}

	dim := space.Dim()
	n := space.Size()
	faceAxis := obL.Face.Axis()
	tangential := make([]int, 0, dim-1)
	for a := 0; a < dim; a++ {
		if a != faceAxis {
			tangential = append(tangential, a)
		}
	}

	vanishesL := make([]bool, n)
	vanishesR := make([]bool, n)
	coincidentL := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		vanishesL[i] = true
		vanishesR[i] = true
		full := make(map[int]struct{}, n)
		for j := 0; j < n; j++ {
			full[j] = struct{}{}
		}
		coincidentL[i] = full
	}

	scratch := space.NewScratch()
	outL := make([]float64, n)
	outR := make([]float64, n)
	pointL := make([]float64, dim)
	pointR := make([]float64, dim)

	localL := obL.LocalID()
	localR := obR.LocalID()

	for _, combo := range outerProductSamples(len(tangential), samples) {
		fillSidePoint(pointL, localL, tangential, combo, obL.Axes)
		fillSidePoint(pointR, localR, tangential, combo, obR.Axes)

		if err := space.Evaluate(pointL, scratch, outL); err != nil {
			return err
		}
		if err := space.Evaluate(pointR, scratch, outR); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if !tol.Vanishes(outL[i]) {
				vanishesL[i] = false
			}
			if !tol.Vanishes(outR[i]) {
				vanishesR[i] = false
			}
		}
		for i := 0; i < n; i++ {
			set := coincidentL[i]
			for j := range set {
				if !tol.Equal(outL[i], outR[j]) {
					delete(set, j)
				}
			}
		}
	}

	var pairs []IndexPair
	for i := 0; i < n; i++ {
		if vanishesL[i] {
			continue
		}
		for j := range coincidentL[i] {
			if vanishesR[j] {
				continue
			}
			pairs = append(pairs, IndexPair{Left: i, Right: j})
		}
	}
	m.pairs[pairKey{left: obL, right: obR}] = pairs
	return nil
}

// fillSidePoint writes the local reference-frame coordinates for one
// side of a shared face into point: the face-normal coordinate is fixed
// to local's sign, and each tangential axis takes the sample value,
// reflected when that axis's orientation entry is Negative.
func fillSidePoint(point []float64, local boundary.BoundaryID, tangential []int, combo []float64, axes boundary.OrientedAxes) {
	if local.Sign() == boundary.Positive {
		point[local.Axis()] = 1
	} else {
		point[local.Axis()] = -1
	}
	for k, a := range tangential {
		entry, _ := axes.At(a)
		v := combo[k]
		if entry.Sign() == boundary.Negative {
			v = -v
		}
		point[a] = v
	}
}

// outerProductSamples builds the nAxes-fold outer product of samples, one
// combination per row. With nAxes == 0 it returns a single empty
// combination, representing the one point on a 1-D face (a corner).
func outerProductSamples(nAxes int, samples []float64) [][]float64 {
	combos := [][]float64{{}}
	for a := 0; a < nAxes; a++ {
		next := make([][]float64, 0, len(combos)*len(samples))
		for _, c := range combos {
			for _, s := range samples {
				nc := make([]float64, len(c)+1)
				copy(nc, c)
				nc[len(c)] = s
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}

func (m *Map) hasEitherOrder(a, b boundary.OrientedBoundary) bool {
	if _, ok := m.pairs[pairKey{left: a, right: b}]; ok {
		return true
	}
	_, ok := m.pairs[pairKey{left: b, right: a}]
	return ok
}

// GetPairs returns the index pairs discovered between a and b. If only
// the transposed key (b,a) was recorded, the pairs are returned with
// Left and Right swapped. A miss on both orderings is ErrPairNotFound.
func (m *Map) GetPairs(a, b boundary.OrientedBoundary) ([]IndexPair, error) {
	if p, ok := m.pairs[pairKey{left: a, right: b}]; ok {
		out := make([]IndexPair, len(p))
		copy(out, p)
		return out, nil
	}
	if p, ok := m.pairs[pairKey{left: b, right: a}]; ok {
		out := make([]IndexPair, len(p))
		for i, pr := range p {
			out[i] = IndexPair{Left: pr.Right, Right: pr.Left}
		}
		return out, nil
	}
	return nil, ErrPairNotFound
}

// GetPairCount returns len(GetPairs(a, b)), or 0 if the pair is unknown.
func (m *Map) GetPairCount(a, b boundary.OrientedBoundary) int {
	pairs, err := m.GetPairs(a, b)
	if err != nil {
		return 0
	}
	return len(pairs)
}
