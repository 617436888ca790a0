package problem_test

import (
	"testing"

	"github.com/katalvlaran/tsplib/problem"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	k, ok := problem.KindFromString("CVRP")
	require.True(t, ok)
	require.Equal(t, problem.CVRP, k)
	require.Equal(t, "CVRP", k.String())

	_, ok = problem.KindFromString("tsp") // vocabulary is case-sensitive
	require.False(t, ok)
}

func TestWeightKind_Dims(t *testing.T) {
	require.Equal(t, 2, problem.Euc2D.Dims())
	require.Equal(t, 2, problem.Geo.Dims())
	require.Equal(t, 3, problem.Man3D.Dims())
	require.Equal(t, 3, problem.XRay1.Dims())
	require.Equal(t, 0, problem.Explicit.Dims())
	require.Equal(t, 0, problem.Special.Dims())
}

func TestWeightKind_Cost(t *testing.T) {
	w, err := problem.Euc2D.Cost([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, w)

	w, err = problem.Max3D.Cost([]float64{0, 0, 0}, []float64{1, 5.5, 2})
	require.NoError(t, err)
	require.Equal(t, 6.0, w)

	_, err = problem.Special.Cost([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, problem.ErrNoWeightFunction)
	_, err = problem.Explicit.Cost([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, problem.ErrNoWeightFunction)
}

func TestMatrixLayout_TokenCount(t *testing.T) {
	const dim = 5
	require.Equal(t, 25, problem.FullMatrix.TokenCount(dim))
	require.Equal(t, 10, problem.UpperRow.TokenCount(dim))
	require.Equal(t, 10, problem.LowerRow.TokenCount(dim))
	require.Equal(t, 10, problem.UpperCol.TokenCount(dim))
	require.Equal(t, 10, problem.LowerCol.TokenCount(dim))
	require.Equal(t, 15, problem.UpperDiagRow.TokenCount(dim))
	require.Equal(t, 15, problem.LowerDiagRow.TokenCount(dim))
	require.Equal(t, 15, problem.UpperDiagCol.TokenCount(dim))
	require.Equal(t, 15, problem.LowerDiagCol.TokenCount(dim))
	require.Equal(t, 0, problem.NoLayout.TokenCount(dim))
}

func TestMatrixLayout_TriangularAndDiagonal(t *testing.T) {
	require.False(t, problem.FullMatrix.Triangular())
	require.True(t, problem.FullMatrix.HasDiagonal())
	require.True(t, problem.UpperRow.Triangular())
	require.False(t, problem.UpperRow.HasDiagonal())
	require.True(t, problem.LowerDiagCol.Triangular())
	require.True(t, problem.LowerDiagCol.HasDiagonal())
	require.False(t, problem.NoLayout.Triangular())
}

func TestCoordKindForWeight(t *testing.T) {
	require.Equal(t, problem.TwoD, problem.CoordKindForWeight(problem.Att))
	require.Equal(t, problem.ThreeD, problem.CoordKindForWeight(problem.Euc3D))
	require.Equal(t, problem.CoordNone, problem.CoordKindForWeight(problem.Explicit))
}

func TestHeader_CoordDims(t *testing.T) {
	// Declared arity wins.
	h := problem.Header{CoordKind: problem.ThreeD, WeightKind: problem.Euc2D}
	require.Equal(t, 3, h.CoordDims())

	// Falls back to the weight kind's implied arity.
	h = problem.Header{WeightKind: problem.Man3D}
	require.Equal(t, 3, h.CoordDims())

	// Defaults to planar.
	h = problem.Header{WeightKind: problem.Explicit}
	require.Equal(t, 2, h.CoordDims())
}
