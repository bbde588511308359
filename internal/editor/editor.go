// Package editor connects documents to the numbering engine. An Editor is the
// surface a command reads from and writes back to: an in-memory Buffer or a
// File on disk.
package editor

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrLineOutOfRange is returned by Line for a line number past the document.
var ErrLineOutOfRange = errors.New("line out of range")

// Position is a cursor location. Line and Ch are 0-based; Ch counts runes.
type Position struct {
	Line int `json:"line" yaml:"line"`
	Ch   int `json:"ch" yaml:"ch"`
}

// Editor is a document surface. Implementations must be safe for concurrent
// use.
type Editor interface {
	Text() string
	// SetText replaces the whole document in one write.
	SetText(text string) error
	Cursor() Position
	SetCursor(p Position)
	// Line returns line n (0-based) without its line terminator.
	Line(n int) (string, error)
	LineCount() int
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func lineAt(text string, n int) (string, error) {
	lines := splitLines(text)
	if n < 0 || n >= len(lines) {
		return "", ErrLineOutOfRange
	}
	return strings.TrimSuffix(lines[n], "\r"), nil
}

// Clamp moves p inside text: the line is capped at the last line and the
// column at that line's length.
func Clamp(text string, p Position) Position {
	lines := splitLines(text)
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= len(lines) {
		p.Line = len(lines) - 1
	}
	width := utf8.RuneCountInString(strings.TrimSuffix(lines[p.Line], "\r"))
	p.Ch = max(0, min(p.Ch, width))
	return p
}
