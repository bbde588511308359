package numbering

import (
	"strings"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/numeral"
)

// ComposeSegment wraps a numeral in a level's display format. Only the first
// placeholder is substituted; a format without one is used verbatim.
func ComposeSegment(num, displayFormat string) string {
	if displayFormat == "" || displayFormat == config.Placeholder {
		return num
	}
	return strings.Replace(displayFormat, config.Placeholder, num, 1)
}

// ComposePrefix builds the full number prefix for a heading at level from the
// counter vector. Segments are rendered for levels from StartLevel (or
// StartLevel+1 when parent numbers are not prepended) through
// min(level, EndLevel), joined by each level's separator. A level whose
// counter is zero renders nothing, not even its separator.
func ComposePrefix(level int, counters Counters, s config.Settings) string {
	last := min(level, s.EndLevel())
	first := s.StartLevel
	if !s.PrependParentNumber && level > s.StartLevel {
		first = s.StartLevel + 1
	}

	var b strings.Builder
	for l := first; l <= last; l++ {
		lc := s.Level(l - s.StartLevel)
		n := 0
		if l >= 0 && l < len(counters) {
			n = counters[l]
		}
		num := numeral.Format(n, lc.Style)
		if num == "" {
			continue
		}
		b.WriteString(ComposeSegment(num, lc.Format()))
		if l < last {
			sep, _ := lc.Sep()
			b.WriteString(sep)
		}
	}
	return b.String()
}

// Preview returns the prefixes a heading at level would receive when every
// counter from StartLevel to level is 1, 2 and 3.
func Preview(level int, s config.Settings) []string {
	out := make([]string, 0, 3)
	for n := 1; n <= 3; n++ {
		var c Counters
		for l := s.StartLevel; l <= level && l < len(c); l++ {
			c[l] = n
		}
		out = append(out, ComposePrefix(level, c, s))
	}
	return out
}
