package problem

import "fmt"

// Problem is the aggregate root produced by a successful parse: header plus
// whichever sections were present, with the weight encoding resolved at
// construction. Fields are unexported; all reads go through getters or the
// lazy iterators, so the value is immutable and safe for concurrent use.
type Problem struct {
	header Header

	nodeOrder  []int
	nodeCoords map[int][]float64

	dispOrder  []int
	dispCoords map[int][]float64

	depots  []int
	demands map[int]int

	fixedEdges []Edge

	edgeList []Edge
	adjOrder []int
	adjList  map[int][]int

	// weights is the dense Dimension×Dimension matrix when the weight kind
	// is Explicit, nil otherwise. Exactly one of {weights, metric call} is
	// the active weight source, selected once at construction.
	weights [][]float64

	tours [][]int
}

// Header returns a copy of the decoded specification part.
func (p *Problem) Header() Header { return p.header }

// Name returns the dataset name (NAME).
func (p *Problem) Name() string { return p.header.Name }

// Kind returns the problem type (TYPE).
func (p *Problem) Kind() Kind { return p.header.Kind }

// Comment returns the dataset comment (COMMENT), possibly empty.
func (p *Problem) Comment() string { return p.header.Comment }

// Dimension returns the declared node count (DIMENSION).
func (p *Problem) Dimension() int { return p.header.Dimension }

// Capacity returns the truck capacity (CAPACITY); zero unless CVRP.
func (p *Problem) Capacity() int { return p.header.Capacity }

// WeightKind returns how edge weights are obtained (EDGE_WEIGHT_TYPE).
func (p *Problem) WeightKind() WeightKind { return p.header.WeightKind }

// Layout returns the explicit matrix layout (EDGE_WEIGHT_FORMAT), or
// NoLayout when weights are computed from coordinates.
func (p *Problem) Layout() MatrixLayout { return p.header.Layout }

// EdgeFormat returns the EDGE_DATA_SECTION encoding (EDGE_DATA_FORMAT).
func (p *Problem) EdgeFormat() EdgeDataFormat { return p.header.EdgeFormat }

// CoordKind returns the node coordinate arity (NODE_COORD_TYPE).
func (p *Problem) CoordKind() CoordKind { return p.header.CoordKind }

// DisplayKind returns the display coordinate policy (DISPLAY_DATA_TYPE).
func (p *Problem) DisplayKind() DisplayKind { return p.header.DisplayKind }

// Symmetric reports whether weight(i, j) == weight(j, i) is guaranteed for
// this problem. Only the inherently directed kinds — ATSP and SOP — are
// asymmetric; every distance function and every triangular layout is
// symmetric by construction.
func (p *Problem) Symmetric() bool {
	return p.header.Kind != ATSP && p.header.Kind != SOP
}

// NodeCoord returns a copy of the coordinate tuple for a node id; ok is
// false when the id carries no coordinates.
func (p *Problem) NodeCoord(id int) ([]float64, bool) {
	c, ok := p.nodeCoords[id]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(c))
	copy(out, c)
	return out, true
}

// DisplayCoord returns a copy of the display coordinate tuple for a node
// id; ok is false when the id carries none.
func (p *Problem) DisplayCoord(id int) ([]float64, bool) {
	c, ok := p.dispCoords[id]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(c))
	copy(out, c)
	return out, true
}

// Depots returns a copy of the depot node ids in file order (CVRP).
func (p *Problem) Depots() []int {
	out := make([]int, len(p.depots))
	copy(out, p.depots)
	return out
}

// Demand returns the demand for a node id; ok is false when the id has no
// demand entry.
func (p *Problem) Demand(id int) (int, bool) {
	d, ok := p.demands[id]
	return d, ok
}

// EdgeList returns a copy of the EDGE_DATA_SECTION edge list, when the
// edge data format is EdgeList.
func (p *Problem) EdgeList() []Edge {
	out := make([]Edge, len(p.edgeList))
	copy(out, p.edgeList)
	return out
}

// Adjacency returns a copy of the neighbor list of a node id, when the
// edge data format is AdjList; ok is false when the id has no list.
func (p *Problem) Adjacency(id int) ([]int, bool) {
	ns, ok := p.adjList[id]
	if !ok {
		return nil, false
	}
	out := make([]int, len(ns))
	copy(out, ns)
	return out, true
}

// NumTours returns how many tours the TOUR_SECTION carried.
func (p *Problem) NumTours() int { return len(p.tours) }

// Weight returns the edge weight between nodes i and j, both in
// [1, Dimension].
//
// Contract:
//   - Explicit weight kinds read the dense matrix decoded at parse time;
//     the lookup is uniform regardless of the input layout, and symmetric
//     layouts populated both (i, j) and (j, i) from the single source token.
//   - Every other computable kind calls its distance function on demand —
//     weights are never precomputed into a matrix behind this accessor.
//   - weight(i, i) is 0 whenever the layout omitted the diagonal or the
//     weights are computed.
//
// Errors: ErrNodeOutOfRange for ids outside [1, Dimension];
// ErrNoWeightFunction when no weight source exists (SPECIAL).
//
// Complexity: O(1).
func (p *Problem) Weight(i, j int) (float64, error) {
	dim := p.header.Dimension
	if i < 1 || i > dim || j < 1 || j > dim {
		return 0, fmt.Errorf("weight(%d, %d) with dimension %d: %w", i, j, dim, ErrNodeOutOfRange)
	}

	if p.weights != nil {
		return p.weights[i-1][j-1], nil
	}

	if i == j {
		return 0, nil
	}

	a, okA := p.nodeCoords[i]
	b, okB := p.nodeCoords[j]
	if !okA || !okB {
		// Unreachable after a successful parse: coordinate coverage is
		// validated against the dimension.
		return 0, fmt.Errorf("weight(%d, %d): missing coordinates: %w", i, j, ErrNodeOutOfRange)
	}
	return p.header.WeightKind.Cost(a, b)
}
