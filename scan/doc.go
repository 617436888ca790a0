// Package scan provides the lexical line reader underneath the TSPLIB
// decoder.
//
// It splits raw input into logical lines (trimmed, blank lines dropped,
// 1-based physical line numbers retained for diagnostics), tolerates both
// LF and CRLF line endings, and offers the KEY : VALUE splitting rule used
// by the specification part of the format — the colon may be surrounded by
// arbitrary spacing.
//
// The scanner performs no interpretation beyond that: keyword recognition,
// enum validation and numeric decoding belong to the parse package.
package scan
