// Package problem defines the typed, immutable model produced by parsing a
// TSPLIB document.
//
// The closed header vocabularies (Kind, WeightKind, MatrixLayout, …) are
// tagged variants rather than open string dispatch, so every switch over
// them is exhaustiveness-checkable. The mutually exclusive weight encodings
// — an explicit matrix in one of nine layouts versus a distance function
// over coordinates — are resolved once at construction; downstream callers
// consume only the uniform Weight(i, j) capability.
//
// A Problem never mutates after construction. All accessors either return
// defensive copies or lazy, restartable iterators, so any number of
// goroutines may read the same Problem concurrently without locking.
//
// Errors:
//
//	ErrNodeOutOfRange  - a node id outside [1, Dimension] was requested.
//	ErrNoWeightFunction - the weight type has no computable distance function.
package problem
