package problem

import (
	"github.com/katalvlaran/tsplib/metric"
)

// Kind enumerates the TSPLIB problem types (the TYPE keyword).
// The kind determines which sections are legal and required.
type Kind uint8

const (
	// KindNone is the zero value: no TYPE line has been decoded.
	KindNone Kind = iota
	// TSP is the symmetric travelling salesman problem.
	TSP
	// ATSP is the asymmetric travelling salesman problem.
	ATSP
	// SOP is the sequential ordering problem.
	SOP
	// HCP is the Hamiltonian cycle problem.
	HCP
	// CVRP is the capacitated vehicle routing problem.
	CVRP
	// TOUR is a collection of tours.
	TOUR
)

var kindNames = map[Kind]string{
	TSP:  "TSP",
	ATSP: "ATSP",
	SOP:  "SOP",
	HCP:  "HCP",
	CVRP: "CVRP",
	TOUR: "TOUR",
}

// String returns the TSPLIB spelling of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "NONE"
}

// KindFromString maps a TYPE value onto its variant; ok is false for any
// spelling outside the closed vocabulary.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if s == name {
			return k, true
		}
	}
	return KindNone, false
}

// WeightKind enumerates the EDGE_WEIGHT_TYPE vocabulary: either weights are
// explicit in the file, or they are computed from coordinates by one of the
// named distance functions.
type WeightKind uint8

const (
	// WeightNone is the zero value: no EDGE_WEIGHT_TYPE line has been decoded.
	WeightNone WeightKind = iota
	// Explicit weights are listed literally in EDGE_WEIGHT_SECTION.
	Explicit
	// Euc2D is the rounded two-dimensional Euclidean distance.
	Euc2D
	// Euc3D is the rounded three-dimensional Euclidean distance.
	Euc3D
	// Max2D is the two-dimensional maximum (Chebyshev) distance.
	Max2D
	// Max3D is the three-dimensional maximum (Chebyshev) distance.
	Max3D
	// Man2D is the rounded two-dimensional Manhattan distance.
	Man2D
	// Man3D is the rounded three-dimensional Manhattan distance.
	Man3D
	// Ceil2D is the two-dimensional Euclidean distance rounded up.
	Ceil2D
	// Geo is the geographical distance on a fixed-radius sphere.
	Geo
	// Att is the pseudo-Euclidean distance of the att48/att532 instances.
	Att
	// XRay1 is the version-1 crystallography distance.
	XRay1
	// XRay2 is the version-2 crystallography distance.
	XRay2
	// Special marks a user-defined distance function; no weight can be
	// computed by this library.
	Special
)

var weightKindNames = map[WeightKind]string{
	Explicit: "EXPLICIT",
	Euc2D:    "EUC_2D",
	Euc3D:    "EUC_3D",
	Max2D:    "MAX_2D",
	Max3D:    "MAX_3D",
	Man2D:    "MAN_2D",
	Man3D:    "MAN_3D",
	Ceil2D:   "CEIL_2D",
	Geo:      "GEO",
	Att:      "ATT",
	XRay1:    "XRAY1",
	XRay2:    "XRAY2",
	Special:  "SPECIAL",
}

// String returns the TSPLIB spelling of the weight kind.
func (w WeightKind) String() string {
	if s, ok := weightKindNames[w]; ok {
		return s
	}
	return "NONE"
}

// WeightKindFromString maps an EDGE_WEIGHT_TYPE value onto its variant.
func WeightKindFromString(s string) (WeightKind, bool) {
	for w, name := range weightKindNames {
		if s == name {
			return w, true
		}
	}
	return WeightNone, false
}

// Dims returns the coordinate arity implied by the weight kind: 3 for the
// three-dimensional metrics, 2 for the planar ones, 0 when the kind does
// not imply coordinates at all (EXPLICIT, SPECIAL).
func (w WeightKind) Dims() int {
	switch w {
	case Euc2D, Max2D, Man2D, Ceil2D, Geo, Att:
		return 2
	case Euc3D, Max3D, Man3D, XRay1, XRay2:
		return 3
	default:
		return 0
	}
}

// Cost computes the distance between two coordinate tuples under this
// weight kind. Exhaustive over the computable variants; EXPLICIT and
// SPECIAL have no distance function and return ErrNoWeightFunction.
//
// Contract: len(a) and len(b) must be at least Dims(); the parse package
// guarantees this for any Problem it constructs.
//
// Complexity: O(1).
func (w WeightKind) Cost(a, b []float64) (float64, error) {
	switch w {
	case Euc2D:
		return metric.Euc2D(a[0], a[1], b[0], b[1]), nil
	case Euc3D:
		return metric.Euc3D(a[0], a[1], a[2], b[0], b[1], b[2]), nil
	case Max2D:
		return metric.Max2D(a[0], a[1], b[0], b[1]), nil
	case Max3D:
		return metric.Max3D(a[0], a[1], a[2], b[0], b[1], b[2]), nil
	case Man2D:
		return metric.Man2D(a[0], a[1], b[0], b[1]), nil
	case Man3D:
		return metric.Man3D(a[0], a[1], a[2], b[0], b[1], b[2]), nil
	case Ceil2D:
		return metric.Ceil2D(a[0], a[1], b[0], b[1]), nil
	case Geo:
		return metric.Geo(a[0], a[1], b[0], b[1]), nil
	case Att:
		return metric.Att(a[0], a[1], b[0], b[1]), nil
	case XRay1:
		return metric.XRay1(a[0], a[1], a[2], b[0], b[1], b[2]), nil
	case XRay2:
		return metric.XRay2(a[0], a[1], a[2], b[0], b[1], b[2]), nil
	default:
		return 0, ErrNoWeightFunction
	}
}

// MatrixLayout enumerates the EDGE_WEIGHT_FORMAT vocabulary — the nine ways
// an explicit matrix may be flattened into the token stream. Only
// meaningful when the weight kind is Explicit.
type MatrixLayout uint8

const (
	// NoLayout is the zero value: no EDGE_WEIGHT_FORMAT line has been
	// decoded (or the file declared FUNCTION).
	NoLayout MatrixLayout = iota
	// FullMatrix lists all Dimension² entries row-major; the only layout
	// that may carry asymmetric values.
	FullMatrix
	// UpperRow lists the strict upper triangle row-major, no diagonal.
	UpperRow
	// LowerRow lists the strict lower triangle row-major, no diagonal.
	LowerRow
	// UpperDiagRow lists the upper triangle row-major including the diagonal.
	UpperDiagRow
	// LowerDiagRow lists the lower triangle row-major including the diagonal.
	LowerDiagRow
	// UpperCol lists the strict upper triangle column-major, no diagonal.
	UpperCol
	// LowerCol lists the strict lower triangle column-major, no diagonal.
	LowerCol
	// UpperDiagCol lists the upper triangle column-major including the diagonal.
	UpperDiagCol
	// LowerDiagCol lists the lower triangle column-major including the diagonal.
	LowerDiagCol
)

var matrixLayoutNames = map[MatrixLayout]string{
	FullMatrix:   "FULL_MATRIX",
	UpperRow:     "UPPER_ROW",
	LowerRow:     "LOWER_ROW",
	UpperDiagRow: "UPPER_DIAG_ROW",
	LowerDiagRow: "LOWER_DIAG_ROW",
	UpperCol:     "UPPER_COL",
	LowerCol:     "LOWER_COL",
	UpperDiagCol: "UPPER_DIAG_COL",
	LowerDiagCol: "LOWER_DIAG_COL",
}

// String returns the TSPLIB spelling of the layout.
func (m MatrixLayout) String() string {
	if s, ok := matrixLayoutNames[m]; ok {
		return s
	}
	return "NONE"
}

// MatrixLayoutFromString maps an EDGE_WEIGHT_FORMAT value onto its variant.
func MatrixLayoutFromString(s string) (MatrixLayout, bool) {
	for m, name := range matrixLayoutNames {
		if s == name {
			return m, true
		}
	}
	return NoLayout, false
}

// Triangular reports whether the layout stores only half of a symmetric
// matrix. FullMatrix (and NoLayout) are not triangular.
func (m MatrixLayout) Triangular() bool {
	return m != NoLayout && m != FullMatrix
}

// HasDiagonal reports whether the flattened stream carries the diagonal
// entries explicitly.
func (m MatrixLayout) HasDiagonal() bool {
	switch m {
	case FullMatrix, UpperDiagRow, LowerDiagRow, UpperDiagCol, LowerDiagCol:
		return true
	default:
		return false
	}
}

// TokenCount returns the exact number of numeric tokens the layout requires
// for a matrix of order dim. Zero for NoLayout.
func (m MatrixLayout) TokenCount(dim int) int {
	switch m {
	case FullMatrix:
		return dim * dim
	case UpperRow, LowerRow, UpperCol, LowerCol:
		return dim * (dim - 1) / 2
	case UpperDiagRow, LowerDiagRow, UpperDiagCol, LowerDiagCol:
		return dim * (dim + 1) / 2
	default:
		return 0
	}
}

// EdgeDataFormat enumerates the EDGE_DATA_FORMAT vocabulary for graphs that
// are not complete.
type EdgeDataFormat uint8

const (
	// EdgeFormatNone is the zero value: no EDGE_DATA_FORMAT line decoded.
	EdgeFormatNone EdgeDataFormat = iota
	// EdgeList stores edges as node-id pairs terminated by -1.
	EdgeList
	// AdjList stores per-node adjacency lists, each terminated by -1.
	AdjList
)

// String returns the TSPLIB spelling of the edge data format.
func (e EdgeDataFormat) String() string {
	switch e {
	case EdgeList:
		return "EDGE_LIST"
	case AdjList:
		return "ADJ_LIST"
	default:
		return "NONE"
	}
}

// EdgeDataFormatFromString maps an EDGE_DATA_FORMAT value onto its variant.
func EdgeDataFormatFromString(s string) (EdgeDataFormat, bool) {
	switch s {
	case "EDGE_LIST":
		return EdgeList, true
	case "ADJ_LIST":
		return AdjList, true
	default:
		return EdgeFormatNone, false
	}
}

// CoordKind enumerates the NODE_COORD_TYPE vocabulary.
type CoordKind uint8

const (
	// CoordNone is the zero value: no NODE_COORD_TYPE line decoded.
	CoordNone CoordKind = iota
	// TwoD marks two-dimensional node coordinates.
	TwoD
	// ThreeD marks three-dimensional node coordinates.
	ThreeD
	// NoCoord marks the explicit absence of coordinates.
	NoCoord
)

// String returns the TSPLIB spelling of the coordinate kind.
func (c CoordKind) String() string {
	switch c {
	case TwoD:
		return "TWOD_COORDS"
	case ThreeD:
		return "THREED_COORDS"
	case NoCoord:
		return "NO_COORDS"
	default:
		return "NONE"
	}
}

// CoordKindFromString maps a NODE_COORD_TYPE value onto its variant.
func CoordKindFromString(s string) (CoordKind, bool) {
	switch s {
	case "TWOD_COORDS":
		return TwoD, true
	case "THREED_COORDS":
		return ThreeD, true
	case "NO_COORDS":
		return NoCoord, true
	default:
		return CoordNone, false
	}
}

// Dims returns the per-node coordinate count: 2, 3, or 0 when coordinates
// are absent or undeclared.
func (c CoordKind) Dims() int {
	switch c {
	case TwoD:
		return 2
	case ThreeD:
		return 3
	default:
		return 0
	}
}

// CoordKindForWeight derives the coordinate kind implied by a weight kind,
// used when a file omits NODE_COORD_TYPE.
func CoordKindForWeight(w WeightKind) CoordKind {
	switch w.Dims() {
	case 2:
		return TwoD
	case 3:
		return ThreeD
	default:
		return CoordNone
	}
}

// DisplayKind enumerates the DISPLAY_DATA_TYPE vocabulary.
type DisplayKind uint8

const (
	// DisplayNone is the zero value: no DISPLAY_DATA_TYPE line decoded.
	DisplayNone DisplayKind = iota
	// CoordDisplay reuses the node coordinates for display.
	CoordDisplay
	// TwoDDisplay supplies dedicated 2D coordinates in DISPLAY_DATA_SECTION.
	TwoDDisplay
	// NoDisplay suppresses graphical display.
	NoDisplay
)

// String returns the TSPLIB spelling of the display kind.
func (d DisplayKind) String() string {
	switch d {
	case CoordDisplay:
		return "COORD_DISPLAY"
	case TwoDDisplay:
		return "TWOD_DISPLAY"
	case NoDisplay:
		return "NO_DISPLAY"
	default:
		return "NONE"
	}
}

// DisplayKindFromString maps a DISPLAY_DATA_TYPE value onto its variant.
func DisplayKindFromString(s string) (DisplayKind, bool) {
	switch s {
	case "COORD_DISPLAY":
		return CoordDisplay, true
	case "TWOD_DISPLAY":
		return TwoDDisplay, true
	case "NO_DISPLAY":
		return NoDisplay, true
	default:
		return DisplayNone, false
	}
}
