package numbering

import (
	"github.com/jackzampolin/headnum/internal/config"
)

// SettingsSource supplies the current settings. Each call must return an
// independent snapshot.
type SettingsSource interface {
	Settings() config.Settings
}

// Numbered records the prefix assigned to one heading.
type Numbered struct {
	Line   int    `json:"line" yaml:"line"` // 1-based
	Level  int    `json:"level" yaml:"level"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Title  string `json:"title" yaml:"title"`
}

// Result is the outcome of a generation pass.
type Result struct {
	Text     string
	Counters Counters
	Headings []Numbered
}

// Generate numbers every in-range heading of text. It is a pure function of
// its inputs: counters start at zero on every call.
func Generate(text string, s config.Settings) Result {
	var stripper *Stripper
	if s.RemoveExisting {
		stripper = NewStripper(s)
	}

	lines := splitLines(text)
	var counters Counters
	var numbered []Numbered

	for i, line := range lines {
		h, ok := ParseHeading(line)
		if !ok {
			continue
		}

		title := h.Title
		if stripper != nil {
			title = stripper.StripTitle(title)
		}

		if !s.InRange(h.Level) {
			if stripper != nil {
				h.Title = title
				lines[i] = h.String()
			}
			continue
		}

		counters = counters.Advance(h.Level)
		prefix := ComposePrefix(h.Level, counters, s)
		h.Title = prefix + " " + title
		lines[i] = h.String()

		numbered = append(numbered, Numbered{
			Line:   i + 1,
			Level:  h.Level,
			Prefix: prefix,
			Title:  title,
		})
	}

	return Result{
		Text:     joinLines(lines),
		Counters: counters,
		Headings: numbered,
	}
}

// Engine runs generation and removal against the current settings of a
// source. It holds no settings of its own.
type Engine struct {
	source SettingsSource
	legacy []config.Settings
}

// NewEngine creates an engine reading settings from source.
func NewEngine(source SettingsSource) *Engine {
	return &Engine{source: source}
}

// WithLegacy returns a copy of the engine that also recognizes numbering
// produced by the given older settings when removing.
func (e *Engine) WithLegacy(legacy ...config.Settings) *Engine {
	return &Engine{source: e.source, legacy: append(append([]config.Settings(nil), e.legacy...), legacy...)}
}

// Generate numbers text using one settings snapshot.
func (e *Engine) Generate(text string) Result {
	return Generate(text, e.source.Settings())
}

// Remove strips numbering from every heading of text using one settings
// snapshot.
func (e *Engine) Remove(text string) string {
	return NewStripper(e.source.Settings(), e.legacy...).StripAll(text)
}

// Static is a SettingsSource that always returns copies of the same settings.
type Static config.Settings

// Settings returns a deep copy.
func (s Static) Settings() config.Settings {
	cs := config.Settings(s)
	return *cs.Clone()
}
