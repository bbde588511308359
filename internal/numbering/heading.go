// Package numbering generates and removes multi-level heading numbers in
// markdown-style documents.
package numbering

import (
	"regexp"
	"strings"

	"github.com/jackzampolin/headnum/internal/config"
)

// headingPattern matches a heading line: 1-8 markers, whitespace, then a
// non-empty title.
var headingPattern = regexp.MustCompile(`^(#{1,8})[ \t]+(\S.*)$`)

// Heading is a parsed heading line.
type Heading struct {
	Markers string
	Level   int
	Title   string
	// CR is set when the line carried a trailing carriage return.
	CR bool
}

// ParseHeading classifies a raw line. Lines that are not headings return
// false and must be passed through unchanged.
func ParseHeading(line string) (Heading, bool) {
	raw, cr := strings.CutSuffix(line, "\r")
	m := headingPattern.FindStringSubmatch(raw)
	if m == nil {
		return Heading{}, false
	}
	return Heading{
		Markers: m[1],
		Level:   len(m[1]),
		Title:   m[2],
		CR:      cr,
	}, true
}

// String reassembles the heading line.
func (h Heading) String() string {
	line := h.Markers + " " + h.Title
	if h.CR {
		line += "\r"
	}
	return line
}

// Counters is the per-level counter vector of one generation pass. Index 0 is
// unused; 1-8 are heading levels.
type Counters [config.MaxLevel + 1]int

// Advance returns the counters after a heading at level: every deeper level
// is reset to zero and level is incremented by one.
func (c Counters) Advance(level int) Counters {
	if level < 1 || level > config.MaxLevel {
		return c
	}
	for l := level + 1; l <= config.MaxLevel; l++ {
		c[l] = 0
	}
	c[level]++
	return c
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
