package watch

import (
	"log/slog"
	"regexp"
	"strings"
)

// headingProbe is the cheap test for "this line is a heading".
var headingProbe = regexp.MustCompile(`^#{1,8}\s`)

// Change is an inclusive range of 0-based line numbers touched by an edit.
type Change struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// LineSource is the part of an editor the probe reads from.
type LineSource interface {
	Line(n int) (string, error)
}

// HeadingChanged reports whether any line in the changed ranges is a heading.
// A line that cannot be read is logged and the whole check answers false, so
// a failed read skips regeneration instead of running on bad input. A nil
// logger uses slog.Default().
func HeadingChanged(logger *slog.Logger, src LineSource, changes ...Change) bool {
	if logger == nil {
		logger = slog.Default()
	}
	for _, c := range changes {
		for n := c.From; n <= c.To; n++ {
			line, err := src.Line(n)
			if err != nil {
				logger.Warn("failed to read changed line", "line", n, "error", err)
				return false
			}
			if headingProbe.MatchString(line) {
				return true
			}
		}
	}
	return false
}

// DiffRange returns the smallest range of lines in next that differs from
// prev. The second result is false when the texts are equal. When lines were
// only deleted the range is the single line at the deletion point.
func DiffRange(prev, next string) (Change, bool) {
	if prev == next {
		return Change{}, false
	}
	a := strings.Split(prev, "\n")
	b := strings.Split(next, "\n")

	limit := min(len(a), len(b))
	head := 0
	for head < limit && a[head] == b[head] {
		head++
	}
	tail := 0
	for tail < limit-head && a[len(a)-1-tail] == b[len(b)-1-tail] {
		tail++
	}

	from := min(head, len(b)-1)
	to := max(from, len(b)-1-tail)
	return Change{From: from, To: to}, true
}
