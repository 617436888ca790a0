package parse

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsplib/problem"
	"github.com/katalvlaran/tsplib/scan"
)

// Section keywords of the data part. EOF is not a section: it ends input.
const (
	kwNodeCoordSec   = "NODE_COORD_SECTION"
	kwEdgeWeightSec  = "EDGE_WEIGHT_SECTION"
	kwEdgeDataSec    = "EDGE_DATA_SECTION"
	kwFixedEdgesSec  = "FIXED_EDGES_SECTION"
	kwDisplayDataSec = "DISPLAY_DATA_SECTION"
	kwDepotSec       = "DEPOT_SECTION"
	kwDemandSec      = "DEMAND_SECTION"
	kwTourSec        = "TOUR_SECTION"
	kwEOF            = "EOF"
)

var sectionSet = map[string]struct{}{
	kwNodeCoordSec:   {},
	kwEdgeWeightSec:  {},
	kwEdgeDataSec:    {},
	kwFixedEdgesSec:  {},
	kwDisplayDataSec: {},
	kwDepotSec:       {},
	kwDemandSec:      {},
	kwTourSec:        {},
}

// Parse decodes a TSPLIB document from r.
//
// Contract: the returned Problem is complete and immutable, or the error is
// the first failure in scan order and no Problem is returned.
//
// Complexity: O(input size); explicit matrices stream their tokens and are
// stored once, dense.
func Parse(r io.Reader) (*problem.Problem, error) {
	d := &decoder{sc: scan.NewScanner(r), seen: make(map[string]bool)}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.b.Build(), nil
}

// String decodes a TSPLIB document held in memory.
func String(s string) (*problem.Problem, error) {
	return Parse(strings.NewReader(s))
}

// File opens path and decodes it. Open/read failures surface as ErrIO.
func File(path string) (*problem.Problem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return Parse(f)
}

// decoder holds the single-pass parse state: the line scanner, the builder
// accumulating decoded sections, and the set of section keywords already
// dispatched (for duplicate detection).
type decoder struct {
	sc   *scan.Scanner
	b    problem.Builder
	seen map[string]bool
}

// run drives the pass: header lines until the first section keyword, then
// accumulate-and-flush per section until EOF or end of input.
func (d *decoder) run() error {
	var (
		cur        string      // active section keyword, "" before the first
		buf        []scan.Line // lines accumulated for cur
		headerDone bool
	)

	for {
		line, ok := d.sc.Next()
		if !ok {
			if err := d.sc.Err(); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
			break
		}

		first := firstField(line.Text)
		if first == kwEOF {
			break
		}

		if _, isSection := sectionSet[first]; isSection {
			// The header is sealed by the first section keyword, so layout
			// conflicts (Scenario: ATSP with a triangular layout) surface
			// before any section token is read.
			if !headerDone {
				if err := d.validateHeader(); err != nil {
					return err
				}
				headerDone = true
			}
			if err := d.flush(cur, buf); err != nil {
				return err
			}
			if d.seen[first] {
				return fmt.Errorf("line %d: %s repeated: %w", line.Num, first, ErrDuplicateSection)
			}
			d.seen[first] = true
			cur, buf = first, nil
			continue
		}

		if !headerDone {
			if err := d.headerLine(line); err != nil {
				return err
			}
			continue
		}
		buf = append(buf, line)
	}

	if !headerDone {
		if err := d.validateHeader(); err != nil {
			return err
		}
	}
	if err := d.flush(cur, buf); err != nil {
		return err
	}
	return d.validateData()
}

// headerLine decodes one specification line. Unknown keys carrying a colon
// are ignored for forward compatibility; a colonless non-keyword line this
// early is structural garbage.
func (d *decoder) headerLine(l scan.Line) error {
	key, val, ok := scan.SplitKeyValue(l.Text)
	if !ok {
		return fmt.Errorf("line %d: %q before any section: %w", l.Num, l.Text, ErrMalformedFile)
	}

	h := &d.b.Header
	switch key {
	case "NAME":
		h.Name = val
	case "COMMENT":
		// Multi-line comments concatenate in file order.
		if h.Comment != "" {
			h.Comment += " "
		}
		h.Comment += val
	case "TYPE":
		k, known := problem.KindFromString(val)
		if !known {
			return fmt.Errorf("line %d: TYPE %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.Kind = k
	case "DIMENSION":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("line %d: DIMENSION %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.Dimension = n
	case "CAPACITY":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("line %d: CAPACITY %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.Capacity = n
	case "EDGE_WEIGHT_TYPE":
		w, known := problem.WeightKindFromString(val)
		if !known {
			return fmt.Errorf("line %d: EDGE_WEIGHT_TYPE %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.WeightKind = w
	case "EDGE_WEIGHT_FORMAT":
		// FUNCTION is the "no stored matrix" marker some published files
		// carry next to computed weight types; it maps to NoLayout.
		if val == "FUNCTION" {
			h.Layout = problem.NoLayout
			break
		}
		m, known := problem.MatrixLayoutFromString(val)
		if !known {
			return fmt.Errorf("line %d: EDGE_WEIGHT_FORMAT %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.Layout = m
	case "EDGE_DATA_FORMAT":
		e, known := problem.EdgeDataFormatFromString(val)
		if !known {
			return fmt.Errorf("line %d: EDGE_DATA_FORMAT %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.EdgeFormat = e
	case "NODE_COORD_TYPE":
		c, known := problem.CoordKindFromString(val)
		if !known {
			return fmt.Errorf("line %d: NODE_COORD_TYPE %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.CoordKind = c
	case "DISPLAY_DATA_TYPE":
		dk, known := problem.DisplayKindFromString(val)
		if !known {
			return fmt.Errorf("line %d: DISPLAY_DATA_TYPE %q: %w", l.Num, val, ErrMalformedHeader)
		}
		h.DisplayKind = dk
	default:
		// Unknown specification keys are ignored (forward compatibility).
	}
	return nil
}

// flush hands the accumulated lines of a finished section to its decoder.
func (d *decoder) flush(kw string, buf []scan.Line) error {
	switch kw {
	case "":
		return nil
	case kwNodeCoordSec:
		return d.decodeNodeCoords(buf)
	case kwEdgeWeightSec:
		return d.decodeEdgeWeights(buf)
	case kwEdgeDataSec:
		return d.decodeEdgeData(buf)
	case kwFixedEdgesSec:
		return d.decodeFixedEdges(buf)
	case kwDisplayDataSec:
		return d.decodeDisplayData(buf)
	case kwDepotSec:
		return d.decodeDepots(buf)
	case kwDemandSec:
		return d.decodeDemands(buf)
	case kwTourSec:
		return d.decodeTours(buf)
	}
	return nil
}

// firstField returns the text up to the first whitespace.
func firstField(text string) string {
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return text[:i]
	}
	return text
}
