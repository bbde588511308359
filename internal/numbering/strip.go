package numbering

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/numeral"
)

// Character classes recognized as numerals when stripping.
const (
	chineseClass = `零一二三四五六七八九十百千`
	circledClass = `\x{2460}-\x{24FF}\x{3200}-\x{32FF}\x{3300}-\x{33FF}`
	punctClass   = `.)\s\-、,，:：`
	openBracket  = `(\[（【`
	closeBracket = `)\]）】`
)

// tokenPattern matches one numeral of any supported style. Letter runs must
// end at a word boundary so ordinary words are never split into tokens.
var tokenPattern = strings.Join([]string{
	`\d+`,
	`[A-Z]+\b`,
	`[a-z]+\b`,
	`[` + chineseClass + `]+`,
	`[` + circledClass + `]+`,
}, "|")

// genericSeparator is used for levels whose separator is unset.
const genericSeparator = `(?:[` + punctClass + `])?`

// fallbackPattern strips one legacy or hand-typed numbering token: an
// optional opening bracket, a numeral, then a closing bracket or punctuation.
// Circled glyphs need no trailing delimiter.
var fallbackPattern = regexp.MustCompile(
	`^[` + openBracket + `]?(?:` +
		`(\d+|[A-Za-z]+|[` + chineseClass + `]+)(?:[` + closeBracket + `][` + punctClass + `]*|[` + punctClass + `]+|$)` +
		`|([` + circledClass + `]+)[` + closeBracket + `]?[` + punctClass + `]*)`,
)

type matcherKind int

const (
	// matcherConfigured carries a pattern derived from the settings.
	matcherConfigured matcherKind = iota
	// matcherFallback means the settings could not be turned into a pattern;
	// only the generic heuristic applies.
	matcherFallback
)

// matcher is the configured prefix pattern for one settings snapshot.
type matcher struct {
	kind     matcherKind
	re       *regexp.Regexp
	literals string // display format and separator text, for plausibility checks
}

// buildMatcher derives the prefix pattern for s. It never fails: a pattern
// that does not compile yields the fallback variant.
func buildMatcher(s config.Settings) matcher {
	n := min(s.Depth, len(s.Levels))
	if n <= 0 {
		return matcher{kind: matcherFallback}
	}

	segments := make([]string, n)
	var literals strings.Builder
	for i := 0; i < n; i++ {
		lc := s.Levels[i]
		segments[i] = segmentPattern(lc)
		literals.WriteString(strings.Replace(lc.Format(), config.Placeholder, " ", 1))
		literals.WriteString(" ")
		if sep, ok := lc.Sep(); ok {
			literals.WriteString(sep)
			literals.WriteString(" ")
		}
	}

	// Nest the segments so any leading run of 1..n levels matches:
	// seg0(?:seg1(?:seg2)?)?
	chain := segments[n-1]
	for i := n - 2; i >= 0; i-- {
		chain = segments[i] + `(?:` + chain + `)?`
	}

	re, err := regexp.Compile(`^(?:` + chain + `)+(?:\s+|$)`)
	if err != nil {
		return matcher{kind: matcherFallback}
	}
	return matcher{kind: matcherConfigured, re: re, literals: literals.String()}
}

// segmentPattern builds the pattern for one level: the display format with
// its first placeholder replaced by the numeral token, then the separator.
func segmentPattern(lc config.LevelConfig) string {
	format := lc.Format()
	var seg string
	if before, after, found := strings.Cut(format, config.Placeholder); found {
		seg = regexp.QuoteMeta(before) + `(?:` + tokenPattern + `)` + regexp.QuoteMeta(after)
	} else {
		seg = regexp.QuoteMeta(format)
	}

	var sep string
	if s, ok := lc.Sep(); !ok {
		sep = genericSeparator
	} else if s != "" {
		sep = `(?:` + regexp.QuoteMeta(s) + `)?`
	}
	return `(?:` + seg + `)` + sep
}

// strip removes the configured prefix from title, reporting whether it did.
func (m matcher) strip(title string) (string, bool) {
	if m.kind != matcherConfigured {
		return title, false
	}
	loc := m.re.FindStringIndex(title)
	if loc == nil || loc[1] == 0 {
		return title, false
	}
	rest := strings.TrimSpace(title[loc[1]:])
	if rest == "" || !m.plausible(title[:loc[1]]) {
		return title, false
	}
	return rest, true
}

// plausible rejects matches that are more likely words than numbers: a bare
// word must be a single letter or a roman numeral, and every letter run must
// be short, a roman numeral, or literal text from the settings.
func (m matcher) plausible(prefix string) bool {
	trimmed := strings.TrimSpace(prefix)
	if isLetters(trimmed) && !strings.Contains(m.literals, trimmed) {
		return len(trimmed) == 1 || numeral.IsRoman(trimmed)
	}
	for _, run := range letterRuns(trimmed) {
		if len(run) <= 3 || numeral.IsRoman(run) || strings.Contains(m.literals, run) {
			continue
		}
		return false
	}
	return true
}

// stripFallback repeatedly removes generic numbering tokens until a step
// makes no change. A title is never stripped to nothing.
func stripFallback(title string) string {
	for {
		next := stripFallbackOnce(title)
		if next == title || next == "" {
			return title
		}
		title = next
	}
}

func stripFallbackOnce(title string) string {
	title = strings.TrimSpace(title)
	loc := fallbackPattern.FindStringSubmatchIndex(title)
	if loc == nil || loc[1] == 0 {
		return title
	}
	if loc[2] >= 0 {
		token := title[loc[2]:loc[3]]
		if isLetters(token) && len(token) > 1 && !numeral.IsRoman(token) {
			return title
		}
	}
	return strings.TrimSpace(title[loc[1]:])
}

// Stripper removes generated numbering from heading titles.
type Stripper struct {
	matchers []matcher
}

// NewStripper builds a stripper for s. Numbering produced under any of the
// legacy settings is recognized too; s takes precedence.
func NewStripper(s config.Settings, legacy ...config.Settings) *Stripper {
	st := &Stripper{matchers: []matcher{buildMatcher(s)}}
	for _, l := range legacy {
		st.matchers = append(st.matchers, buildMatcher(l))
	}
	return st
}

// Degraded reports whether the current settings could not be turned into a
// pattern, so only the generic heuristic is applied.
func (s *Stripper) Degraded() bool {
	return s.matchers[0].kind == matcherFallback
}

// StripTitle removes numbering from the start of a heading title.
func (s *Stripper) StripTitle(title string) string {
	for _, m := range s.matchers {
		if stripped, ok := m.strip(title); ok {
			title = stripped
			break
		}
	}
	return stripFallback(title)
}

// StripLine removes numbering from a heading line. Other lines are returned
// unchanged.
func (s *Stripper) StripLine(line string) string {
	h, ok := ParseHeading(line)
	if !ok {
		return line
	}
	h.Title = s.StripTitle(h.Title)
	return h.String()
}

// StripAll removes numbering from every heading line of text.
func (s *Stripper) StripAll(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = s.StripLine(line)
	}
	return joinLines(lines)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// letterRuns returns the maximal runs of ASCII letters in s.
func letterRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		letter := r <= unicode.MaxASCII && unicode.IsLetter(r)
		switch {
		case letter && start < 0:
			start = i
		case !letter && start >= 0:
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
