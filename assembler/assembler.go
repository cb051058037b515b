package assembler

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/femtopo/meshgraph"
)

// IndexPair names a local DoF on a source cell and a local DoF on a
// target cell that a DoFMatcher asserts must share one global DoF.
type IndexPair struct {
	Left  int
	Right int
}

// Emitter collects the index pairs a DoFMatcher produces for one edge.
type Emitter struct {
	pairs []IndexPair
}

// Emit records that local index i on the edge's source cell and local
// index j on its target cell must be fused into the same global DoF.
func (e *Emitter) Emit(i, j int) {
	e.pairs = append(e.pairs, IndexPair{Left: i, Right: j})
}

// DoFCounter reports how many local DoFs a cell's payload has.
type DoFCounter[V any] func(payload V) int

// DoFMatcher pushes, into emit, every (localIdxOnSource, localIdxOnTarget)
// pair that edge's payload implies must be fused. It may fail — in
// practice this is how a connectivity.Map lookup miss propagates.
type DoFMatcher[E any] func(edge meshgraph.Edge[E], emit *Emitter) error

// dof is the assembler's internal Option<usize>: assigned reports
// whether id holds a minted global DoF yet.
type dof struct {
	id       uint64
	assigned bool
}

// Assembler builds a global DoF numbering over a meshgraph.Graph by
// breadth-first traversal, fusing local indices across edges per a
// caller-supplied matcher. It exclusively owns the DoF table it builds.
type Assembler[V any, E any] struct {
	base  uint64
	next  uint64
	table map[meshgraph.VertexID][]dof
	order []meshgraph.VertexID
}

// New constructs an Assembler whose first minted global DoF id is base.
func New[V any, E any](base uint64) *Assembler[V, E] {
	return &Assembler[V, E]{
		base:  base,
		next:  base,
		table: make(map[meshgraph.VertexID][]dof),
	}
}

func (a *Assembler[V, E]) mint() uint64 {
	k := a.next
	a.next++
	return k
}

// ensureRow allocates the DoF table row for vertex id, sized n, filled
// with unassigned entries, if it does not already exist.
func (a *Assembler[V, E]) ensureRow(id meshgraph.VertexID, n int) []dof {
	if row, ok := a.table[id]; ok {
		return row
	}
	row := make([]dof, n)
	a.table[id] = row
	a.order = append(a.order, id)
	return row
}

// AddGraph traverses g breadth-first from its first vertex (in
// insertion order), building the DoF table. dofCounter gives the number
// of local DoFs on a cell; dofMatcher gives the local-index pairs that
// must be fused across an edge. After it returns without error, every
// table entry holds an assigned global DoF.
func (a *Assembler[V, E]) AddGraph(g *meshgraph.Graph[V, E], dofCounter DoFCounter[V], dofMatcher DoFMatcher[E]) error {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	visited := make(map[meshgraph.VertexID]bool)
	processedEdges := make(map[meshgraph.EdgeID]bool)
	queue := []meshgraph.VertexID{vertices[0].ID}
	visited[vertices[0].ID] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		v, ok := g.FindVertex(id)
		if !ok {
			continue
		}
		a.ensureRow(id, dofCounter(v.Payload))

		for eid := range v.Incident {
			e, ok := g.FindEdge(eid)
			if !ok {
				continue
			}
			if e.Source == e.Target {
				return ErrSelfLoopUnsupported
			}

			other := e.Target
			if e.Target == id {
				other = e.Source
			}
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}

			if processedEdges[eid] {
				continue
			}
			processedEdges[eid] = true

			if err := a.processEdge(g, dofCounter, dofMatcher, e); err != nil {
				return err
			}
		}
	}

	for _, id := range a.order {
		row := a.table[id]
		for i, d := range row {
			if !d.assigned {
				row[i] = dof{id: a.mint(), assigned: true}
			}
		}
	}
	return nil
}

func (a *Assembler[V, E]) processEdge(g *meshgraph.Graph[V, E], dofCounter DoFCounter[V], dofMatcher DoFMatcher[E], e *meshgraph.Edge[E]) error {
	src, _ := g.FindVertex(e.Source)
	tgt, _ := g.FindVertex(e.Target)
	a.ensureRow(e.Source, dofCounter(src.Payload))
	a.ensureRow(e.Target, dofCounter(tgt.Payload))

	emitter := &Emitter{}
	if err := dofMatcher(*e, emitter); err != nil {
		return err
	}

	for _, pair := range emitter.pairs {
		if err := a.reconcile(e.ID, e.Source, pair.Left, e.Target, pair.Right); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler[V, E]) reconcile(edgeID meshgraph.EdgeID, s meshgraph.VertexID, i int, t meshgraph.VertexID, j int) error {
	sRow, tRow := a.table[s], a.table[t]
	if i < 0 || i >= len(sRow) || j < 0 || j >= len(tRow) {
		return fmt.Errorf("assembler: edge %d: pair (%d, %d) out of range for rows of length (%d, %d): %w",
			edgeID, i, j, len(sRow), len(tRow), ErrLocalIndexOutOfRange)
	}
	sDoF, tDoF := sRow[i], tRow[j]

	switch {
	case !sDoF.assigned && !tDoF.assigned:
		k := dof{id: a.mint(), assigned: true}
		sRow[i], tRow[j] = k, k
	case sDoF.assigned && !tDoF.assigned:
		tRow[j] = sDoF
	case !sDoF.assigned && tDoF.assigned:
		sRow[i] = tDoF
	default:
		if sDoF.id != tDoF.id {
			return &DoFReconciliationError{
				Edge: edgeID, Source: s, Target: t,
				LocalSource: i, LocalTarget: j,
				GlobalSource: sDoF.id, GlobalTarget: tDoF.id,
			}
		}
	}
	return nil
}

// DoFCount returns the number of distinct global DoF ids minted.
func (a *Assembler[V, E]) DoFCount() int {
	return int(a.next - a.base)
}

// Keys returns every vertex id with a DoF table row, in the order each
// was first touched during AddGraph.
func (a *Assembler[V, E]) Keys() []meshgraph.VertexID {
	out := make([]meshgraph.VertexID, len(a.order))
	copy(out, a.order)
	return out
}

// DoFs returns the global DoF ids assigned to vertex id's local indices,
// in position order. It reports false if id has no table row.
func (a *Assembler[V, E]) DoFs(id meshgraph.VertexID) ([]uint64, bool) {
	row, ok := a.table[id]
	if !ok {
		return nil, false
	}
	out := make([]uint64, len(row))
	for i, d := range row {
		out[i] = d.id
	}
	return out, true
}

// Items returns a snapshot of the full DoF table, keyed by vertex id.
func (a *Assembler[V, E]) Items() map[meshgraph.VertexID][]uint64 {
	out := make(map[meshgraph.VertexID][]uint64, len(a.table))
	for id := range a.table {
		out[id], _ = a.DoFs(id)
	}
	return out
}

// VertexIDs is the assembler's reverse lookup: given a global DoF id,
// it returns every vertex whose local table holds it, once per local
// slot that carries it (a vertex with the same global id at two local
// indices is reported twice), in table-row order.
func (a *Assembler[V, E]) VertexIDs(globalID uint64) []meshgraph.VertexID {
	var out []meshgraph.VertexID
	for _, id := range a.order {
		for _, d := range a.table[id] {
			if d.assigned && d.id == globalID {
				out = append(out, id)
			}
		}
	}
	return out
}

// MakeCSR builds the CSR sparsity pattern of the assembled operator:
// for every cell, the full clique of its global DoFs contributes
// nonzeros, so row r's column set is the union, over every cell whose
// DoF set contains r, of that cell's DoF set. values is zero-filled
// with the same length as colIdx.
func (a *Assembler[V, E]) MakeCSR() (rows, cols int, rowPtr, colIdx []int, values []float64) {
	n := a.DoFCount()
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	for _, row := range a.table {
		ids := make([]int, len(row))
		for i, d := range row {
			ids[i] = int(d.id - a.base)
		}
		for _, r := range ids {
			for _, c := range ids {
				adj[r][c] = struct{}{}
			}
		}
	}

	rowPtr = make([]int, n+1)
	for r := 0; r < n; r++ {
		cs := make([]int, 0, len(adj[r]))
		for c := range adj[r] {
			cs = append(cs, c)
		}
		sort.Ints(cs)
		colIdx = append(colIdx, cs...)
		rowPtr[r+1] = len(colIdx)
	}
	values = make([]float64, len(colIdx))
	return n, n, rowPtr, colIdx, values
}
