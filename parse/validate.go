// Package parse - validation of the specification and data parts.
//
// Staged like the rest of the decoder: validateHeader runs once, when the
// first section keyword seals the specification part (or at end of input
// for header-only files); validateData runs after the final section flush.
// Deterministic, side-effect free beyond deriving the coordinate kind; only
// sentinel errors from errors.go.

package parse

import (
	"fmt"

	"github.com/katalvlaran/tsplib/problem"
)

// validateHeader checks the sealed specification part against the closed
// vocabularies and the cross-field rules of the format.
//
// Stages:
//  1. Required keys: NAME, TYPE always; DIMENSION for every kind but TOUR;
//     EDGE_WEIGHT_TYPE for the weighted kinds; CAPACITY for CVRP;
//     EDGE_DATA_FORMAT for HCP.
//  2. Cross-field consistency: a matrix layout is only meaningful for
//     EXPLICIT weights, and EXPLICIT weights need a layout.
//  3. Layout-versus-kind: triangular layouts cannot carry the asymmetric
//     values ATSP and SOP require.
//  4. Derivation: NODE_COORD_TYPE defaults to the arity implied by the
//     weight kind when the file omits it.
func (d *decoder) validateHeader() error {
	h := &d.b.Header

	// Stage 1: required keys.
	if h.Name == "" {
		return fmt.Errorf("missing NAME: %w", ErrMalformedHeader)
	}
	if h.Kind == problem.KindNone {
		return fmt.Errorf("missing TYPE: %w", ErrMalformedHeader)
	}
	// TOUR files may omit DIMENSION entirely, but a declared value still
	// has to be positive.
	if h.Dimension < 1 && (h.Kind != problem.TOUR || h.Dimension != 0) {
		return fmt.Errorf("DIMENSION %d must be at least 1: %w", h.Dimension, ErrMalformedHeader)
	}
	switch h.Kind {
	case problem.TSP, problem.ATSP, problem.SOP, problem.CVRP:
		if h.WeightKind == problem.WeightNone {
			return fmt.Errorf("missing EDGE_WEIGHT_TYPE for %s: %w", h.Kind, ErrMalformedHeader)
		}
	case problem.HCP:
		if h.EdgeFormat == problem.EdgeFormatNone {
			return fmt.Errorf("missing EDGE_DATA_FORMAT for HCP: %w", ErrMalformedHeader)
		}
	}
	if h.Kind == problem.CVRP && h.Capacity < 1 {
		return fmt.Errorf("missing CAPACITY for CVRP: %w", ErrMalformedHeader)
	}

	// Stage 2: layout is meaningful only for explicit weights, and
	// explicit weights cannot be reshaped without one.
	if h.Layout != problem.NoLayout && h.WeightKind != problem.Explicit {
		return fmt.Errorf("EDGE_WEIGHT_FORMAT %s with EDGE_WEIGHT_TYPE %s: %w",
			h.Layout, h.WeightKind, ErrMalformedHeader)
	}
	if h.WeightKind == problem.Explicit && h.Layout == problem.NoLayout {
		return fmt.Errorf("EXPLICIT weights without EDGE_WEIGHT_FORMAT: %w", ErrMalformedHeader)
	}

	// Stage 3: only FULL_MATRIX may carry asymmetric values.
	if (h.Kind == problem.ATSP || h.Kind == problem.SOP) && h.Layout.Triangular() {
		return fmt.Errorf("%s layout for %s: %w", h.Layout, h.Kind, ErrLayoutForKind)
	}

	// Stage 4: derive the coordinate kind when undeclared.
	if h.CoordKind == problem.CoordNone {
		h.CoordKind = problem.CoordKindForWeight(h.WeightKind)
	}

	return nil
}

// validateData checks that every section the sealed header promises has
// actually been decoded, and that CVRP demand coverage is complete.
func (d *decoder) validateData() error {
	h := d.b.Header

	if h.WeightKind == problem.Explicit && d.b.Weights == nil {
		return fmt.Errorf("missing EDGE_WEIGHT_SECTION for EXPLICIT weights: %w", ErrMalformedFile)
	}
	// Computable weight kinds need the coordinates they are computed from.
	if h.WeightKind.Dims() > 0 && d.b.NodeCoords == nil {
		return fmt.Errorf("missing NODE_COORD_SECTION for %s weights: %w", h.WeightKind, ErrMalformedFile)
	}
	if h.Kind == problem.TOUR && len(d.b.Tours) == 0 {
		return fmt.Errorf("missing TOUR_SECTION for TOUR file: %w", ErrMalformedFile)
	}

	// Demands must cover every node id 1..dimension exactly once; ids were
	// range- and duplicate-checked at decode time, so a count comparison
	// completes the coverage proof.
	if d.b.Demands != nil && len(d.b.Demands) != h.Dimension {
		return fmt.Errorf("DEMAND_SECTION covers %d of %d nodes: %w",
			len(d.b.Demands), h.Dimension, ErrMalformedFile)
	}

	return nil
}
