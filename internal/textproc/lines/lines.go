// Package lines groups consecutive lines that satisfy a predicate.
package lines

import "strings"

// Split splits text on "\n", dropping a trailing "\r" from each line.
func Split(text string) []string {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// NonBlank returns the lines that contain something other than whitespace.
func NonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// TrimAll trims every line and drops the ones left empty.
func TrimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Scanner walks a slice of lines with one line of lookahead.
type Scanner struct {
	lines []string
	pos   int
}

// NewScanner returns a Scanner positioned at the first line.
func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Pos returns the index of the next unread line.
func (s *Scanner) Pos() int { return s.pos }

// Seek moves the scanner to index i, clamped to the slice bounds.
func (s *Scanner) Seek(i int) {
	s.pos = min(max(i, 0), len(s.lines))
}

// Done reports whether all lines were consumed.
func (s *Scanner) Done() bool { return s.pos >= len(s.lines) }

// Peek returns the next line without consuming it.
func (s *Scanner) Peek() (string, bool) {
	if s.Done() {
		return "", false
	}
	return s.lines[s.pos], true
}

// Next consumes and returns the next line.
func (s *Scanner) Next() (string, bool) {
	line, ok := s.Peek()
	if ok {
		s.pos++
	}
	return line, ok
}

// TakeWhile consumes lines while keep returns true and returns them. The
// first rejected line stays unread.
func (s *Scanner) TakeWhile(keep func(string) bool) []string {
	start := s.pos
	for !s.Done() && keep(s.lines[s.pos]) {
		s.pos++
	}
	return s.lines[start:s.pos]
}

// SkipUntil advances to the first line for which match returns true and
// reports whether one was found.
func (s *Scanner) SkipUntil(match func(string) bool) bool {
	for !s.Done() {
		if match(s.lines[s.pos]) {
			return true
		}
		s.pos++
	}
	return false
}

// Group is a run of lines opened by a header line.
type Group struct {
	Header string
	Body   []string
}

// GroupBy splits lines into groups, starting a new group at every line for
// which isHeader returns true. Lines before the first header are returned
// as the body of a group with an empty Header.
func GroupBy(in []string, isHeader func(string) bool) []Group {
	var groups []Group
	s := NewScanner(in)
	notHeader := func(l string) bool { return !isHeader(l) }

	if lead := s.TakeWhile(notHeader); len(lead) > 0 {
		groups = append(groups, Group{Body: lead})
	}
	for !s.Done() {
		header, _ := s.Next()
		groups = append(groups, Group{Header: header, Body: s.TakeWhile(notHeader)})
	}
	return groups
}
