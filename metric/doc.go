// Package metric implements the distance functions defined by the TSPLIB
// format, one per EDGE_WEIGHT_TYPE value.
//
// Every function is pure: a deterministic map from two coordinate tuples to
// the integral TSPLIB distance, with no hidden state. The rounding rule is
// part of each function's definition and must not be conflated across
// functions — CEIL_2D rounds the Euclidean norm up where EUC_2D rounds to
// nearest, and the two produce different optimal tours.
//
// Distances are returned as float64 holding an exact integer value, which
// keeps the weight surface uniform with explicitly supplied matrices.
//
// All metrics here are symmetric. Callers resolve i == j to 0 before
// dispatching: the raw GEO formula does not vanish for coincident points.
package metric
