package parse

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/tsplib/problem"
	"github.com/katalvlaran/tsplib/scan"
)

// listEnd is the sentinel terminating variable-length lists in the data
// part (depots, edge lists, tours).
const listEnd = -1

// sectionInts flattens the lines of a sentinel-terminated section into one
// integer token stream, remembering each token's line for diagnostics.
// Numeric failures wrap the section's sentinel error.
func sectionInts(buf []scan.Line, sentinel error) (vals, lines []int, err error) {
	for _, l := range buf {
		for _, f := range l.Fields() {
			v, e := strconv.Atoi(f)
			if e != nil {
				return nil, nil, fmt.Errorf("line %d: token %q: %w", l.Num, f, sentinel)
			}
			vals = append(vals, v)
			lines = append(lines, l.Num)
		}
	}
	return vals, lines, nil
}

// checkNodeID verifies id ∈ [1, dim], wrapping ErrOutOfRangeID with the
// offending line and a caller-supplied role for the message.
func checkNodeID(id, dim, line int, role string) error {
	if id < 1 || id > dim {
		return fmt.Errorf("line %d: %s id %d outside [1, %d]: %w", line, role, id, dim, ErrOutOfRangeID)
	}
	return nil
}

// decodeNodeCoords decodes NODE_COORD_SECTION: exactly Dimension rows of
// "id x y [z]", arity fixed by the header's coordinate kind.
func (d *decoder) decodeNodeCoords(buf []scan.Line) error {
	order, coords, err := d.decodeCoordRows(buf, d.b.Header.CoordDims(), kwNodeCoordSec)
	if err != nil {
		return err
	}
	d.b.NodeOrder, d.b.NodeCoords = order, coords
	return nil
}

// decodeDisplayData decodes DISPLAY_DATA_SECTION: always 2-D rows,
// independent of the weight computation.
func (d *decoder) decodeDisplayData(buf []scan.Line) error {
	order, coords, err := d.decodeCoordRows(buf, 2, kwDisplayDataSec)
	if err != nil {
		return err
	}
	d.b.DispOrder, d.b.DispCoords = order, coords
	return nil
}

// decodeCoordRows is the shared coordinate-section decoder.
//
// Errors: ErrMalformedCoordinate for row-count, field-count and numeric
// failures; out-of-range and duplicate ids additionally match
// ErrOutOfRangeID (both sentinels are wrapped).
func (d *decoder) decodeCoordRows(buf []scan.Line, dims int, section string) ([]int, map[int][]float64, error) {
	dim := d.b.Header.Dimension
	if len(buf) != dim {
		return nil, nil, fmt.Errorf("%s: expected %d rows, got %d: %w",
			section, dim, len(buf), ErrMalformedCoordinate)
	}

	var (
		order  = make([]int, 0, dim)
		coords = make(map[int][]float64, dim)
	)
	for _, l := range buf {
		f := l.Fields()
		if len(f) != 1+dims {
			return nil, nil, fmt.Errorf("line %d: expected %d fields, got %d: %w",
				l.Num, 1+dims, len(f), ErrMalformedCoordinate)
		}

		id, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: node id %q: %w", l.Num, f[0], ErrMalformedCoordinate)
		}
		if id < 1 || id > dim {
			return nil, nil, fmt.Errorf("line %d: node id %d outside [1, %d]: %w (%w)",
				l.Num, id, dim, ErrMalformedCoordinate, ErrOutOfRangeID)
		}
		if _, dup := coords[id]; dup {
			return nil, nil, fmt.Errorf("line %d: duplicate node id %d: %w (%w)",
				l.Num, id, ErrMalformedCoordinate, ErrOutOfRangeID)
		}

		c := make([]float64, dims)
		for k := 0; k < dims; k++ {
			c[k], err = strconv.ParseFloat(f[1+k], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: coordinate %q: %w", l.Num, f[1+k], ErrMalformedCoordinate)
			}
		}

		order = append(order, id)
		coords[id] = c
	}
	return order, coords, nil
}

// decodeDepots decodes DEPOT_SECTION: ordered node ids closed by -1.
func (d *decoder) decodeDepots(buf []scan.Line) error {
	vals, lines, err := sectionInts(buf, ErrMalformedFile)
	if err != nil {
		return err
	}

	var (
		dim    = d.b.Header.Dimension
		depots []int
		seen   = make(map[int]bool)
		i      int
		closed bool
	)
	for i = 0; i < len(vals); i++ {
		if vals[i] == listEnd {
			closed = true
			i++
			break
		}
		if err = checkNodeID(vals[i], dim, lines[i], "depot"); err != nil {
			return err
		}
		if seen[vals[i]] {
			return fmt.Errorf("line %d: duplicate depot id %d: %w", lines[i], vals[i], ErrOutOfRangeID)
		}
		seen[vals[i]] = true
		depots = append(depots, vals[i])
	}
	if !closed {
		return fmt.Errorf("%s: missing -1 terminator: %w", kwDepotSec, ErrMalformedFile)
	}
	if i != len(vals) {
		return fmt.Errorf("line %d: data after %s terminator: %w", lines[i], kwDepotSec, ErrMalformedFile)
	}

	d.b.Depots = depots
	return nil
}

// decodeDemands decodes DEMAND_SECTION: "id demand" rows, demands being
// nonnegative integers. Coverage of 1..Dimension is completed by
// validateData once the whole file is decoded.
func (d *decoder) decodeDemands(buf []scan.Line) error {
	var (
		dim     = d.b.Header.Dimension
		demands = make(map[int]int, dim)
	)
	for _, l := range buf {
		f := l.Fields()
		if len(f) != 2 {
			return fmt.Errorf("line %d: expected 2 fields, got %d: %w", l.Num, len(f), ErrMalformedFile)
		}

		id, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("line %d: demand node id %q: %w", l.Num, f[0], ErrMalformedFile)
		}
		if err = checkNodeID(id, dim, l.Num, "demand node"); err != nil {
			return err
		}
		if _, dup := demands[id]; dup {
			return fmt.Errorf("line %d: duplicate demand for node %d: %w", l.Num, id, ErrOutOfRangeID)
		}

		dem, err := strconv.Atoi(f[1])
		if err != nil {
			return fmt.Errorf("line %d: demand %q: %w", l.Num, f[1], ErrMalformedFile)
		}
		if dem < 0 {
			return fmt.Errorf("line %d: negative demand %d for node %d: %w", l.Num, dem, id, ErrMalformedFile)
		}
		demands[id] = dem
	}

	d.b.Demands = demands
	return nil
}

// decodeFixedEdges decodes FIXED_EDGES_SECTION: id pairs closed by -1.
func (d *decoder) decodeFixedEdges(buf []scan.Line) error {
	edges, err := d.decodeEdgePairs(buf, kwFixedEdgesSec, "fixed edge")
	if err != nil {
		return err
	}
	d.b.FixedEdges = edges
	return nil
}

// decodeEdgeData decodes EDGE_DATA_SECTION according to the declared
// EDGE_DATA_FORMAT.
func (d *decoder) decodeEdgeData(buf []scan.Line) error {
	switch d.b.Header.EdgeFormat {
	case problem.EdgeList:
		edges, err := d.decodeEdgePairs(buf, kwEdgeDataSec, "edge")
		if err != nil {
			return err
		}
		d.b.EdgeList = edges
		return nil
	case problem.AdjList:
		return d.decodeAdjLists(buf)
	default:
		return fmt.Errorf("%s without EDGE_DATA_FORMAT: %w", kwEdgeDataSec, ErrMalformedEdgeList)
	}
}

// decodeEdgePairs is the shared pair-list decoder for EDGE_DATA_SECTION
// (EDGE_LIST) and FIXED_EDGES_SECTION.
func (d *decoder) decodeEdgePairs(buf []scan.Line, section, role string) ([]problem.Edge, error) {
	vals, lines, err := sectionInts(buf, ErrMalformedEdgeList)
	if err != nil {
		return nil, err
	}

	var (
		dim    = d.b.Header.Dimension
		edges  []problem.Edge
		i      int
		closed bool
	)
	for i = 0; i < len(vals); {
		if vals[i] == listEnd {
			closed = true
			i++
			break
		}
		if i+1 >= len(vals) || vals[i+1] == listEnd {
			return nil, fmt.Errorf("line %d: dangling %s endpoint %d: %w",
				lines[i], role, vals[i], ErrMalformedEdgeList)
		}
		if err = checkNodeID(vals[i], dim, lines[i], role); err != nil {
			return nil, err
		}
		if err = checkNodeID(vals[i+1], dim, lines[i+1], role); err != nil {
			return nil, err
		}
		edges = append(edges, problem.Edge{U: vals[i], V: vals[i+1]})
		i += 2
	}
	if !closed {
		return nil, fmt.Errorf("%s: missing -1 terminator: %w", section, ErrMalformedEdgeList)
	}
	if i != len(vals) {
		return nil, fmt.Errorf("line %d: data after %s terminator: %w", lines[i], section, ErrMalformedFile)
	}
	return edges, nil
}

// decodeAdjLists decodes the ADJ_LIST flavor of EDGE_DATA_SECTION: each
// list is "node neighbor… -1"; a -1 where a node id is expected closes the
// section. Lists may wrap across physical lines.
func (d *decoder) decodeAdjLists(buf []scan.Line) error {
	vals, lines, err := sectionInts(buf, ErrMalformedEdgeList)
	if err != nil {
		return err
	}

	var (
		dim   = d.b.Header.Dimension
		order []int
		adj   = make(map[int][]int)
		i     int
	)
	for i < len(vals) {
		if vals[i] == listEnd {
			i++
			break
		}

		node := vals[i]
		if err = checkNodeID(node, dim, lines[i], "adjacency node"); err != nil {
			return err
		}
		if _, dup := adj[node]; dup {
			return fmt.Errorf("line %d: duplicate adjacency list for node %d: %w",
				lines[i], node, ErrMalformedEdgeList)
		}
		i++

		var (
			ns     []int
			closed bool
		)
		for i < len(vals) {
			if vals[i] == listEnd {
				closed = true
				i++
				break
			}
			if err = checkNodeID(vals[i], dim, lines[i], "neighbor"); err != nil {
				return err
			}
			ns = append(ns, vals[i])
			i++
		}
		if !closed {
			return fmt.Errorf("adjacency list of node %d: missing -1 terminator: %w",
				node, ErrMalformedEdgeList)
		}

		order = append(order, node)
		adj[node] = ns
	}
	if i != len(vals) {
		return fmt.Errorf("line %d: data after %s terminator: %w", lines[i], kwEdgeDataSec, ErrMalformedFile)
	}

	d.b.AdjOrder, d.b.AdjList = order, adj
	return nil
}

// decodeTours decodes TOUR_SECTION: node id runs, each tour closed by -1,
// the section closed by end of input or a second -1. Zero tours is legal
// only for non-TOUR files.
func (d *decoder) decodeTours(buf []scan.Line) error {
	vals, lines, err := sectionInts(buf, ErrMalformedTour)
	if err != nil {
		return err
	}

	var (
		dim   = d.b.Header.Dimension
		tours [][]int
		cur   []int
	)
	for i := 0; i < len(vals); i++ {
		if vals[i] == listEnd {
			if len(cur) == 0 {
				// A -1 with no open tour closes the section.
				if i != len(vals)-1 {
					return fmt.Errorf("line %d: data after %s terminator: %w",
						lines[i+1], kwTourSec, ErrMalformedTour)
				}
				break
			}
			tours = append(tours, cur)
			cur = nil
			continue
		}
		// TOUR files may omit DIMENSION; range checks apply only when the
		// bound is known.
		if dim > 0 {
			if err = checkNodeID(vals[i], dim, lines[i], "tour node"); err != nil {
				return err
			}
		}
		cur = append(cur, vals[i])
	}
	if len(cur) > 0 {
		return fmt.Errorf("%s: missing -1 terminator: %w", kwTourSec, ErrMalformedTour)
	}

	d.b.Tours = tours
	return nil
}
