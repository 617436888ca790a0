package parse_test

import (
	"fmt"

	"github.com/katalvlaran/tsplib/parse"
)

// ExampleString decodes a small geographical instance and resolves one edge
// weight: GEO coordinates are DDD.MM degrees/minutes, and the distance is
// the TSPLIB great-circle value.
func ExampleString() {
	p, err := parse.String(`NAME: ulysses3
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: GEO
NODE_COORD_SECTION
1 38.24 20.42
2 39.57 26.15
3 40.56 25.32
EOF
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w, _ := p.Weight(1, 2)
	fmt.Printf("%s: %d nodes, d(1,2) = %.0f\n", p.Name(), p.Dimension(), w)
	// Output:
	// ulysses3: 3 nodes, d(1,2) = 509
}

// ExampleString_edgeWeights iterates the canonical i < j weight sequence
// of a symmetric instance; the matrix arrived as a triangle, lookups see
// the full square.
func ExampleString_edgeWeights() {
	p, err := parse.String(`NAME: tri
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: UPPER_ROW
EDGE_WEIGHT_SECTION
12 13
23
EOF
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for e := range p.EdgeWeights() {
		fmt.Printf("%d-%d: %.0f\n", e.U, e.V, e.Weight)
	}
	// Output:
	// 1-2: 12
	// 1-3: 13
	// 2-3: 23
}
