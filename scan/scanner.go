package scan

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single physical line. Explicit weight sections may
// wrap very long token runs, so the default bufio limit is raised.
const maxLineBytes = 1 << 20

// Line is one logical line of TSPLIB input: trimmed, never empty, tagged
// with its 1-based physical line number for error reporting.
type Line struct {
	Num  int
	Text string
}

// Fields returns the whitespace-separated tokens of the line.
//
// Complexity: O(len(Text)).
func (l Line) Fields() []string { return strings.Fields(l.Text) }

// Scanner yields the logical lines of a TSPLIB document in order.
//
// Contract:
//   - Next skips blank lines and trims surrounding whitespace.
//   - CRLF terminators are handled transparently.
//   - After Next returns false, Err reports the first underlying read
//     failure, or nil on clean end of input.
type Scanner struct {
	src *bufio.Scanner
	num int
}

// NewScanner wraps r in a line scanner sized for wrapped matrix sections.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{src: s}
}

// Next returns the next non-empty logical line.
//
// Complexity: O(bytes consumed).
func (s *Scanner) Next() (Line, bool) {
	for s.src.Scan() {
		s.num++
		text := strings.TrimSpace(s.src.Text())
		if text == "" {
			continue
		}
		return Line{Num: s.num, Text: text}, true
	}
	return Line{}, false
}

// Err reports the first error encountered by the underlying reader.
func (s *Scanner) Err() error { return s.src.Err() }

// SplitKeyValue splits a specification line on its first colon and trims
// both halves, so "KEY : value" and "KEY: value" decode identically.
// ok is false when the line carries no colon at all.
func SplitKeyValue(text string) (key, val string, ok bool) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), true
}
