package problem

import "iter"

// Lazy accessors over the immutable Problem.
//
// Every sequence here is finite, restartable, and derived without mutating
// the Problem, so independent traversals — including concurrent ones — are
// always safe. Yielded slices are defensive copies; callers may retain them.

// Nodes iterates the node coordinates in file order as (id, coords) pairs.
//
// Complexity: O(Dimension) per full traversal, O(arity) space per element.
func (p *Problem) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range p.nodeOrder {
			c := p.nodeCoords[id]
			out := make([]float64, len(c))
			copy(out, c)
			if !yield(Node{ID: id, Coord: out}) {
				return
			}
		}
	}
}

// DisplayNodes iterates the display coordinates in file order.
func (p *Problem) DisplayNodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range p.dispOrder {
			c := p.dispCoords[id]
			out := make([]float64, len(c))
			copy(out, c)
			if !yield(Node{ID: id, Coord: out}) {
				return
			}
		}
	}
}

// FixedEdges iterates the forced edges in file order.
func (p *Problem) FixedEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range p.fixedEdges {
			if !yield(e) {
				return
			}
		}
	}
}

// AdjacencyLists iterates the EDGE_DATA_SECTION adjacency lists in file
// order as (node id, neighbor ids) pairs.
func (p *Problem) AdjacencyLists() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for _, id := range p.adjOrder {
			ns := p.adjList[id]
			out := make([]int, len(ns))
			copy(out, ns)
			if !yield(id, out) {
				return
			}
		}
	}
}

// Tours iterates the tours of a TOUR_SECTION in file order.
func (p *Problem) Tours() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, t := range p.tours {
			out := make([]int, len(t))
			copy(out, t)
			if !yield(out) {
				return
			}
		}
	}
}

// EdgeWeights iterates the resolved edge weights: the canonical i < j
// ordering when the problem is symmetric, all ordered pairs i ≠ j when it
// is not. Non-explicit weight kinds invoke the distance function once per
// yielded pair — no matrix is materialized behind this sequence.
//
// Iteration ends early if a weight cannot be resolved (possible only for
// SPECIAL weight types); use Weight directly to observe that error.
//
// Complexity: O(Dimension²) per full traversal, O(1) space.
func (p *Problem) EdgeWeights() iter.Seq[WeightedEdge] {
	dim := p.header.Dimension
	return func(yield func(WeightedEdge) bool) {
		var (
			w   float64
			err error
		)
		if p.Symmetric() {
			for i := 1; i <= dim; i++ {
				for j := i + 1; j <= dim; j++ {
					if w, err = p.Weight(i, j); err != nil {
						return
					}
					if !yield(WeightedEdge{U: i, V: j, Weight: w}) {
						return
					}
				}
			}
			return
		}
		for i := 1; i <= dim; i++ {
			for j := 1; j <= dim; j++ {
				if i == j {
					continue
				}
				if w, err = p.Weight(i, j); err != nil {
					return
				}
				if !yield(WeightedEdge{U: i, V: j, Weight: w}) {
					return
				}
			}
		}
	}
}
