// Package parse - EDGE_WEIGHT_SECTION decoding.
//
// The section body is one flat token stream; physical line breaks carry no
// meaning. The stream is validated against the exact token count the
// declared layout implies, then reshaped into dense n×n storage so every
// later lookup is a plain index pair. Triangular layouts mirror across the
// diagonal during the reshape; omitted diagonals read as zero.

package parse

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/tsplib/problem"
	"github.com/katalvlaran/tsplib/scan"
)

// decodeEdgeWeights decodes EDGE_WEIGHT_SECTION for EXPLICIT weights.
//
// One deviation from the strict grammar is tolerated: a single surplus
// leading token equal to DIMENSION (the published SOP instances repeat the
// dimension ahead of the matrix body). Any other count mismatch is
// ErrMalformedMatrix.
func (d *decoder) decodeEdgeWeights(buf []scan.Line) error {
	h := d.b.Header
	if h.WeightKind != problem.Explicit {
		return fmt.Errorf("%s with EDGE_WEIGHT_TYPE %s: %w",
			kwEdgeWeightSec, h.WeightKind, ErrMalformedFile)
	}

	toks, err := sectionFloats(buf)
	if err != nil {
		return err
	}

	dim := h.Dimension
	want := h.Layout.TokenCount(dim)
	if len(toks) == want+1 && toks[0] == float64(dim) {
		toks = toks[1:]
	}
	if len(toks) != want {
		return fmt.Errorf("%s: layout %s over %d nodes needs %d values, got %d: %w",
			kwEdgeWeightSec, h.Layout, dim, want, len(toks), ErrMalformedMatrix)
	}

	d.b.Weights = reshape(toks, dim, h.Layout)
	return nil
}

// sectionFloats flattens the section lines into one float64 token stream.
func sectionFloats(buf []scan.Line) ([]float64, error) {
	var toks []float64
	for _, l := range buf {
		for _, f := range l.Fields() {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q: %w", l.Num, f, ErrMalformedMatrix)
			}
			toks = append(toks, v)
		}
	}
	return toks, nil
}

// reshape expands a validated token stream into a dense dim×dim matrix.
// Token order follows the layout's declaration; triangular layouts are
// mirrored so w[i][j] == w[j][i] holds for every stored pair.
func reshape(toks []float64, dim int, layout problem.MatrixLayout) [][]float64 {
	w := make([][]float64, dim)
	for i := range w {
		w[i] = make([]float64, dim)
	}

	k := 0
	next := func() float64 {
		v := toks[k]
		k++
		return v
	}
	set := func(i, j int, v float64) {
		w[i][j] = v
		if i != j {
			w[j][i] = v
		}
	}

	switch layout {
	case problem.FullMatrix:
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				w[i][j] = next() // no mirroring: the full form may be asymmetric
			}
		}
	case problem.UpperRow:
		for i := 0; i < dim; i++ {
			for j := i + 1; j < dim; j++ {
				set(i, j, next())
			}
		}
	case problem.LowerRow:
		for i := 0; i < dim; i++ {
			for j := 0; j < i; j++ {
				set(i, j, next())
			}
		}
	case problem.UpperDiagRow:
		for i := 0; i < dim; i++ {
			for j := i; j < dim; j++ {
				set(i, j, next())
			}
		}
	case problem.LowerDiagRow:
		for i := 0; i < dim; i++ {
			for j := 0; j <= i; j++ {
				set(i, j, next())
			}
		}
	case problem.UpperCol:
		for j := 0; j < dim; j++ {
			for i := 0; i < j; i++ {
				set(i, j, next())
			}
		}
	case problem.LowerCol:
		for j := 0; j < dim; j++ {
			for i := j + 1; i < dim; i++ {
				set(i, j, next())
			}
		}
	case problem.UpperDiagCol:
		for j := 0; j < dim; j++ {
			for i := 0; i <= j; i++ {
				set(i, j, next())
			}
		}
	case problem.LowerDiagCol:
		for j := 0; j < dim; j++ {
			for i := j; i < dim; i++ {
				set(i, j, next())
			}
		}
	}
	return w
}
