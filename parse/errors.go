// Package parse: sentinel error set for the decode taxonomy.
// Every failure is terminal and non-retryable — this is a pure decoder, so
// callers retry only by fixing and resubmitting input. Decoders MUST return
// these sentinels (wrapped with line context via fmt.Errorf("...: %w", ...))
// and tests MUST match them via errors.Is. No decoder panics on user input.

package parse

import (
	"errors"

	"github.com/katalvlaran/tsplib/problem"
)

var (
	// ErrIO is returned when the underlying read fails; the decoder does
	// not retry internally.
	ErrIO = errors.New("parse: input read failed")

	// ErrMalformedHeader is returned when a required header key is missing,
	// a header value falls outside its closed vocabulary, or the header is
	// internally inconsistent (e.g. EDGE_WEIGHT_FORMAT without EXPLICIT).
	ErrMalformedHeader = errors.New("parse: malformed header")

	// ErrMalformedFile is returned for structurally invalid input: data
	// before any section, trailing tokens after a sentinel terminator, or a
	// section required by the header that never appeared.
	ErrMalformedFile = errors.New("parse: malformed file structure")

	// ErrDuplicateSection is returned when a section keyword is recognized
	// more than once.
	ErrDuplicateSection = errors.New("parse: duplicate section")

	// ErrMalformedCoordinate is returned for token-count or numeric-parse
	// failures inside a coordinate section.
	ErrMalformedCoordinate = errors.New("parse: malformed coordinate line")

	// ErrMalformedMatrix is returned when an EDGE_WEIGHT_SECTION token
	// count does not match its layout exactly, or a token fails numeric
	// parsing.
	ErrMalformedMatrix = errors.New("parse: malformed edge weight matrix")

	// ErrMalformedEdgeList is returned for malformed EDGE_DATA_SECTION or
	// FIXED_EDGES_SECTION content (odd pairing, missing -1 terminator,
	// numeric failures).
	ErrMalformedEdgeList = errors.New("parse: malformed edge data")

	// ErrMalformedTour is returned for malformed TOUR_SECTION content.
	ErrMalformedTour = errors.New("parse: malformed tour")

	// ErrLayoutForKind is returned when the declared matrix layout is
	// incompatible with the problem type: a triangular layout cannot carry
	// the asymmetric values an ATSP or SOP instance requires. Raised before
	// any matrix token is read.
	ErrLayoutForKind = errors.New("parse: edge weight layout invalid for problem type")
)

// ErrOutOfRangeID aliases problem.ErrNodeOutOfRange so the whole failure
// taxonomy is reachable from this package; errors.Is matches either name.
var ErrOutOfRangeID = problem.ErrNodeOutOfRange
