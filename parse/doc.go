// Package parse decodes TSPLIB documents into problem.Problem values.
//
// Decoding is a single left-to-right, top-to-bottom pass: the specification
// part (KEY: VALUE lines) is consumed up to the first section keyword, the
// section dispatcher then routes the remaining lines to one decoder per
// section, and the decoded sections are assembled into an immutable
// Problem. The pass is synchronous and atomic — either the whole input
// decodes or the first failure aborts the parse; a partial Problem is never
// returned, and the first failure in scan order is the one reported.
//
// Entry points:
//
//	Parse(r io.Reader)  - decode a stream.
//	String(s string)    - decode an in-memory document.
//	File(path string)   - open and decode a file.
//
// Errors form a sentinel taxonomy (see errors.go) matched via errors.Is;
// every wrap carries the offending line number and, where it applies, the
// expected-versus-actual token count.
//
// Two documented deviations from the strict grammar are tolerated because
// published instances carry them: an EDGE_WEIGHT_SECTION body with one
// surplus leading token equal to DIMENSION (the SOP files), and
// EDGE_WEIGHT_FORMAT: FUNCTION alongside a computed weight type. Nothing
// else is recovered — misspelled keywords and short sections are rejected.
package parse
