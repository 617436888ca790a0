package parse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tsplib/parse"
	"github.com/stretchr/testify/require"
)

// explicitTSP renders a minimal EXPLICIT instance around a matrix body.
func explicitTSP(kind string, dim int, layout, body string) string {
	return fmt.Sprintf(`NAME: m
TYPE: %s
DIMENSION: %d
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: %s
EDGE_WEIGHT_SECTION
%s
EOF
`, kind, dim, layout, body)
}

// TestParse_AllLayoutsRoundTrip feeds each layout the token stream 1..N and
// checks every Weight(i, j) against the dense matrix obtained by applying
// the layout's flattening rule by hand (dim 4, so row and column layouts
// produce distinct matrices).
func TestParse_AllLayoutsRoundTrip(t *testing.T) {
	cases := []struct {
		layout string
		body   string
		want   [4][4]float64
	}{
		{
			layout: "UPPER_ROW",
			body:   "1 2 3\n4 5\n6",
			want: [4][4]float64{
				{0, 1, 2, 3},
				{1, 0, 4, 5},
				{2, 4, 0, 6},
				{3, 5, 6, 0},
			},
		},
		{
			layout: "LOWER_ROW",
			body:   "1\n2 3\n4 5 6",
			want: [4][4]float64{
				{0, 1, 2, 4},
				{1, 0, 3, 5},
				{2, 3, 0, 6},
				{4, 5, 6, 0},
			},
		},
		{
			layout: "UPPER_COL",
			body:   "1\n2 3\n4 5 6",
			want: [4][4]float64{
				{0, 1, 2, 4},
				{1, 0, 3, 5},
				{2, 3, 0, 6},
				{4, 5, 6, 0},
			},
		},
		{
			layout: "LOWER_COL",
			body:   "1 2 3\n4 5\n6",
			want: [4][4]float64{
				{0, 1, 2, 3},
				{1, 0, 4, 5},
				{2, 4, 0, 6},
				{3, 5, 6, 0},
			},
		},
		{
			layout: "UPPER_DIAG_ROW",
			body:   "1 2 3 4\n5 6 7\n8 9\n10",
			want: [4][4]float64{
				{1, 2, 3, 4},
				{2, 5, 6, 7},
				{3, 6, 8, 9},
				{4, 7, 9, 10},
			},
		},
		{
			layout: "LOWER_DIAG_ROW",
			body:   "1\n2 3\n4 5 6\n7 8 9 10",
			want: [4][4]float64{
				{1, 2, 4, 7},
				{2, 3, 5, 8},
				{4, 5, 6, 9},
				{7, 8, 9, 10},
			},
		},
		{
			layout: "UPPER_DIAG_COL",
			body:   "1\n2 3\n4 5 6\n7 8 9 10",
			want: [4][4]float64{
				{1, 2, 4, 7},
				{2, 3, 5, 8},
				{4, 5, 6, 9},
				{7, 8, 9, 10},
			},
		},
		{
			layout: "LOWER_DIAG_COL",
			body:   "1 2 3 4\n5 6 7\n8 9\n10",
			want: [4][4]float64{
				{1, 2, 3, 4},
				{2, 5, 6, 7},
				{3, 6, 8, 9},
				{4, 7, 9, 10},
			},
		},
		{
			layout: "FULL_MATRIX",
			body:   "0 1 2 3\n4 0 5 6\n7 8 0 9\n10 11 12 0",
			want: [4][4]float64{
				{0, 1, 2, 3},
				{4, 0, 5, 6},
				{7, 8, 0, 9},
				{10, 11, 12, 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.layout, func(t *testing.T) {
			p, err := parse.String(explicitTSP("TSP", 4, tc.layout, tc.body))
			require.NoError(t, err)
			for i := 1; i <= 4; i++ {
				for j := 1; j <= 4; j++ {
					w, err := p.Weight(i, j)
					require.NoError(t, err)
					require.Equal(t, tc.want[i-1][j-1], w, "weight(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestParse_TriangularLayoutsAreSymmetricWithZeroDiagonal(t *testing.T) {
	p, err := parse.String(explicitTSP("TSP", 4, "UPPER_ROW", "1 2 3 4 5 6"))
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		d, err := p.Weight(i, i)
		require.NoError(t, err)
		require.Equal(t, 0.0, d)
		for j := i + 1; j <= 4; j++ {
			a, err := p.Weight(i, j)
			require.NoError(t, err)
			b, err := p.Weight(j, i)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	}
}

func TestParse_DiagonalLayoutKeepsExplicitDiagonal(t *testing.T) {
	p, err := parse.String(explicitTSP("TSP", 4, "UPPER_DIAG_ROW", "9 1 2 3 9 4 5 9 6 9"))
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		d, err := p.Weight(i, i)
		require.NoError(t, err)
		require.Equal(t, 9.0, d)
	}
}

func TestParse_MatrixTokenCountMismatch(t *testing.T) {
	// Five tokens where UPPER_ROW over four nodes needs six.
	_, err := parse.String(explicitTSP("TSP", 4, "UPPER_ROW", "1 2 3 4 5"))
	require.ErrorIs(t, err, parse.ErrMalformedMatrix)

	// One token too many.
	_, err = parse.String(explicitTSP("TSP", 4, "UPPER_ROW", "1 2 3 4 5 6 7"))
	require.ErrorIs(t, err, parse.ErrMalformedMatrix)
}

func TestParse_MatrixBadToken(t *testing.T) {
	_, err := parse.String(explicitTSP("TSP", 4, "UPPER_ROW", "1 2 x 4 5 6"))
	require.ErrorIs(t, err, parse.ErrMalformedMatrix)
}

func TestParse_SOPSurplusDimensionToken(t *testing.T) {
	// Published SOP bodies repeat the dimension ahead of the matrix.
	body := "3\n0 1 2\n3 0 4\n5 6 0"
	p, err := parse.String(explicitTSP("SOP", 3, "FULL_MATRIX", body))
	require.NoError(t, err)

	w, err := p.Weight(2, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
	require.False(t, p.Symmetric())
}

func TestParse_SurplusTokenMustEqualDimension(t *testing.T) {
	// A stray leading token that is not the dimension stays an error.
	body := "7\n0 1 2\n3 0 4\n5 6 0"
	_, err := parse.String(explicitTSP("TSP", 3, "FULL_MATRIX", body))
	require.ErrorIs(t, err, parse.ErrMalformedMatrix)
}

func TestParse_TriangularLayoutRejectedForAsymmetricKinds(t *testing.T) {
	_, err := parse.String(explicitTSP("ATSP", 4, "UPPER_ROW", "1 2 3 4 5 6"))
	require.ErrorIs(t, err, parse.ErrLayoutForKind)

	_, err = parse.String(explicitTSP("SOP", 4, "LOWER_DIAG_ROW", "1 2 3 4 5 6 7 8 9 10"))
	require.ErrorIs(t, err, parse.ErrLayoutForKind)

	// FULL_MATRIX carries asymmetric values fine.
	_, err = parse.String(explicitTSP("ATSP", 2, "FULL_MATRIX", "0 1 2 0"))
	require.NoError(t, err)
}

func TestParse_WeightSectionRequiresExplicitType(t *testing.T) {
	in := `NAME: m
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
EDGE_WEIGHT_SECTION
0 1 1 0
EOF
`
	_, err := parse.String(in)
	require.ErrorIs(t, err, parse.ErrMalformedFile)
}

func TestParse_FullMatrixAsymmetricLookup(t *testing.T) {
	p, err := parse.String(explicitTSP("ATSP", 3, "FULL_MATRIX", "0 5 9\n1 0 6\n2 3 0"))
	require.NoError(t, err)

	w, err := p.Weight(1, 3)
	require.NoError(t, err)
	require.Equal(t, 9.0, w)
	w, err = p.Weight(3, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
}
