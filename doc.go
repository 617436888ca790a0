// Package tsplib is a read-only parser for the TSPLIB file format — the
// classic keyword/section text grammar describing routing problem
// instances (TSP, ATSP, HCP, CVRP, SOP and tour collections).
//
// 🚀 What is tsplib?
//
//	A small, thread-friendly library that turns TSPLIB text into a typed,
//	queryable in-memory model:
//		• Header decoding: NAME, TYPE, DIMENSION, EDGE_WEIGHT_TYPE, … into
//		  closed, exhaustively-checkable vocabularies
//		• Section decoding: coordinates, explicit weight matrices (all nine
//		  TSPLIB layouts), fixed edges, depots, demands, tours
//		• Distance functions: EUC_2D/3D, MAX, MAN, CEIL_2D, GEO, ATT and the
//		  XRAY crystallography metrics, with TSPLIB's exact rounding rules
//		• A uniform weight(i, j) capability regardless of whether weights
//		  arrived explicitly or are computed from coordinates on demand
//
// ✨ Why choose tsplib?
//
//   - Strict by default — sentinel errors with line context, never panics
//   - Immutable results — a parsed Problem is safe to share across goroutines
//   - Lazy accessors — iterate coordinates, fixed edges and edge weights
//     without materializing intermediate collections
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	scan/    — lexical line reader (logical lines, KEY: VALUE splitting)
//	metric/  — pure TSPLIB distance functions
//	problem/ — the typed, immutable Problem model and its lazy accessors
//	parse/   — header decoder, section dispatcher and the public entry points
//
// Quick example:
//
//	p, err := parse.String(`
//	NAME: test
//	TYPE: TSP
//	DIMENSION: 3
//	EDGE_WEIGHT_TYPE: GEO
//	NODE_COORD_SECTION
//	1 38.24 20.42
//	2 39.57 26.15
//	3 40.56 25.32
//	EOF
//	`)
//	if err != nil { ... }
//	w, _ := p.Weight(1, 2) // 509 — the TSPLIB geographical distance
//
// Dive into the per-package docs for the full grammar, error taxonomy and
// iteration guarantees.
package tsplib
