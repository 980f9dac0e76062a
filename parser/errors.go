package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	labelNumber   = "number"
	labelVariable = "variable"
	labelEOF      = "EOF"
)

// SyntaxError is the only error Parse returns.
type SyntaxError struct {
	Offset int // Byte offset in the source.
	Line   int // 1-based.
	Column int // 1-based, in runes.

	// Expected holds what would have been accepted at Offset, sorted.
	// Literal tokens are quoted, rules are bare words.
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.expectedString())
}

func (e *SyntaxError) expectedString() string {
	switch len(e.Expected) {
	case 0:
		return "unexpected input"
	case 1:
		return "expected " + e.Expected[0]
	}
	return "expected one of " + strings.Join(e.Expected, ", ")
}

// Snippet renders the source line of the error with a caret under the column.
func (e *SyntaxError) Snippet(src string) string {
	start := strings.LastIndexByte(src[:min(e.Offset, len(src))], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	return src[start:end] + "\n" + strings.Repeat(" ", e.Column-1) + "^"
}

// failureTracker keeps the deepest offset at which a match failed, and the
// labels expected there.
type failureTracker struct {
	offset   int
	expected map[string]struct{}
}

func newFailureTracker() failureTracker {
	return failureTracker{offset: -1, expected: map[string]struct{}{}}
}

func (f *failureTracker) mark(offset int, labels ...string) {
	if offset < f.offset {
		return
	}
	if offset > f.offset {
		f.offset = offset
		clear(f.expected)
	}
	for _, label := range labels {
		f.expected[label] = struct{}{}
	}
}

func (f *failureTracker) err(src string) *SyntaxError {
	offset := max(f.offset, 0)
	line, column := lineCol(src, offset)
	expected := make([]string, 0, len(f.expected))
	for label := range f.expected {
		expected = append(expected, label)
	}
	slices.Sort(expected)
	return &SyntaxError{
		Offset:   offset,
		Line:     line,
		Column:   column,
		Expected: expected,
	}
}

func lineCol(src string, offset int) (int, int) {
	offset = min(offset, len(src))
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, utf8.RuneCountInString(before[lineStart:]) + 1
}
