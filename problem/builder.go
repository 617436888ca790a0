package problem

// Builder accumulates decoded sections and assembles the immutable Problem.
// It performs no validation — the parse package is the intended caller and
// enforces the grammar before Build. Build takes ownership of the builder's
// slices and maps; a builder must not be reused or mutated afterwards.
type Builder struct {
	Header Header

	// NodeOrder preserves the file order of NODE_COORD_SECTION ids so
	// iteration stays deterministic; NodeCoords is the id lookup.
	NodeOrder  []int
	NodeCoords map[int][]float64

	DispOrder  []int
	DispCoords map[int][]float64

	Depots  []int
	Demands map[int]int

	FixedEdges []Edge

	EdgeList []Edge
	AdjOrder []int
	AdjList  map[int][]int

	// Weights is the dense square matrix reshaped from EDGE_WEIGHT_SECTION;
	// nil unless the weight kind is Explicit.
	Weights [][]float64

	Tours [][]int
}

// Build assembles the Problem. After Build, all mutation is over: every
// read goes through the Problem's copying getters and lazy iterators.
func (b Builder) Build() *Problem {
	return &Problem{
		header:     b.Header,
		nodeOrder:  b.NodeOrder,
		nodeCoords: b.NodeCoords,
		dispOrder:  b.DispOrder,
		dispCoords: b.DispCoords,
		depots:     b.Depots,
		demands:    b.Demands,
		fixedEdges: b.FixedEdges,
		edgeList:   b.EdgeList,
		adjOrder:   b.AdjOrder,
		adjList:    b.AdjList,
		weights:    b.Weights,
		tours:      b.Tours,
	}
}
