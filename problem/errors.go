package problem

import "errors"

// Sentinel errors for the model's read surface. Tests and callers MUST
// match them via errors.Is; the parse package wraps ErrNodeOutOfRange with
// line context when ids go out of range during decoding.
var (
	// ErrNodeOutOfRange indicates a node id outside [1, Dimension], or a
	// duplicate id where uniqueness is required.
	ErrNodeOutOfRange = errors.New("problem: node id out of range")

	// ErrNoWeightFunction indicates that Weight was asked to compute a
	// distance for a weight type with no distance function (SPECIAL, or an
	// explicit type whose matrix section was never decoded).
	ErrNoWeightFunction = errors.New("problem: no weight function for weight type")
)
