/*
Package lexer splits an OpenVPN configuration file into directive lines.

Blank lines and comment lines (leading '#' or ';') are skipped. A '#' later in
the line starts a trailing comment that is stripped before tokenizing. Line
numbers always refer to the original file.
*/
package lexer

import (
	"bufio"
	"io"
	"strings"
)

// Line is a single tokenized configuration line.
type Line struct {
	// Number is the 1-based line number in the source file.
	Number int

	// Raw is the line text with comments stripped and surrounding space trimmed.
	Raw string

	// Tokens are the whitespace-separated words of the line.
	// Tokens[0] is the directive keyword.
	Tokens []string

	// Rest is the text after the directive keyword, preserving inner spacing.
	// It is consulted for quoted-string arguments such as push options.
	Rest string
}

// Scanner reads directive lines from a configuration file.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
}

// maxLineSize bounds a single configuration line. The bufio default of 64KiB
// is too small for generated configs with long option lines.
const maxLineSize = 1024 * 1024

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Scanner{scanner: s}
}

// Next returns the next directive line, skipping blanks and comments.
// It returns nil, nil at the end of the input.
func (s *Scanner) Next() (*Line, error) {
	for s.scanner.Scan() {
		s.line++

		line := Split(s.scanner.Text(), s.line)
		if line == nil {
			continue
		}

		return line, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, err
	}

	return nil, nil
}

// Split tokenizes a single raw configuration line. It returns nil for blank
// lines and comment lines.
func Split(raw string, number int) *Line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return nil
	}

	// Whole-line comments start with '#' or ';'.
	if trimmed[0] == '#' || trimmed[0] == ';' {
		return nil
	}

	// A '#' after the first column starts a trailing comment.
	if ind := strings.Index(trimmed, "#"); ind > 0 {
		trimmed = strings.TrimSpace(trimmed[:ind])
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) == 0 {
		return nil
	}

	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, tokens[0]))

	return &Line{
		Number: number,
		Raw:    trimmed,
		Tokens: tokens,
		Rest:   rest,
	}
}
