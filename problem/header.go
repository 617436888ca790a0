package problem

// Header carries the decoded specification part of a TSPLIB document: the
// top-of-file KEY: VALUE entries, validated against their closed
// vocabularies. It is the single source of truth every section decoder
// consults for dimension and layout, and it never changes once decoded.
type Header struct {
	// Name maps to NAME.
	Name string
	// Kind maps to TYPE.
	Kind Kind
	// Comment maps to COMMENT.
	Comment string
	// Dimension maps to DIMENSION; fixed once parsed, it bounds every
	// per-node section's expected row and entry count. Zero only for TOUR
	// files that omit it.
	Dimension int
	// Capacity maps to CAPACITY (CVRP only).
	Capacity int
	// WeightKind maps to EDGE_WEIGHT_TYPE.
	WeightKind WeightKind
	// Layout maps to EDGE_WEIGHT_FORMAT; NoLayout when absent or FUNCTION.
	Layout MatrixLayout
	// EdgeFormat maps to EDGE_DATA_FORMAT.
	EdgeFormat EdgeDataFormat
	// CoordKind maps to NODE_COORD_TYPE, or is derived from WeightKind
	// when the file omits it.
	CoordKind CoordKind
	// DisplayKind maps to DISPLAY_DATA_TYPE.
	DisplayKind DisplayKind
}

// CoordDims returns the per-node coordinate count the node coordinate
// section must honor: the declared NODE_COORD_TYPE arity, falling back to
// the weight kind's implied arity, defaulting to 2.
func (h Header) CoordDims() int {
	if d := h.CoordKind.Dims(); d > 0 {
		return d
	}
	if d := h.WeightKind.Dims(); d > 0 {
		return d
	}
	return 2
}

// Node couples a node id with its coordinate tuple.
type Node struct {
	ID    int
	Coord []float64
}

// Edge is an id pair. For fixed edges the pair is semantically unordered;
// it is stored in file order for determinism.
type Edge struct {
	U, V int
}

// WeightedEdge is an (i, j, weight) triple produced by weight iteration.
type WeightedEdge struct {
	U, V   int
	Weight float64
}
