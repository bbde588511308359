package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackzampolin/headnum/internal/numeral"
)

// ErrInvalidSettings is returned by Validate when a value is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Heading levels that can carry numbering.
const (
	MinLevel = 1
	MaxLevel = 8
)

// Placeholder is the token in a display format that receives the numeral.
const Placeholder = "{}"

// LevelConfig configures the numbering of a single heading level.
type LevelConfig struct {
	Style         numeral.Style `mapstructure:"style" yaml:"style" json:"style"`
	DisplayFormat string        `mapstructure:"display_format" yaml:"display_format" json:"display_format"`
	// Separator is appended after this level's segment when a deeper segment
	// follows. nil means unset: nothing is appended, and stripping accepts any
	// common punctuation.
	Separator *string `mapstructure:"separator" yaml:"separator,omitempty" json:"separator,omitempty"`
}

// Sep returns the separator and whether it was set.
func (lc LevelConfig) Sep() (string, bool) {
	if lc.Separator == nil {
		return "", false
	}
	return *lc.Separator, true
}

// Format returns the display format, defaulting to the bare placeholder.
func (lc LevelConfig) Format() string {
	if lc.DisplayFormat == "" {
		return Placeholder
	}
	return lc.DisplayFormat
}

// Settings holds the numbering configuration.
// Stored at: {home}/settings.yaml
type Settings struct {
	StartLevel          int           `mapstructure:"start_level" yaml:"start_level" json:"start_level"`
	Depth               int           `mapstructure:"depth" yaml:"depth" json:"depth"`
	PrependParentNumber bool          `mapstructure:"prepend_parent_number" yaml:"prepend_parent_number" json:"prepend_parent_number"`
	RemoveExisting      bool          `mapstructure:"remove_existing" yaml:"remove_existing" json:"remove_existing"`
	AutoGenerate        bool          `mapstructure:"auto_generate" yaml:"auto_generate" json:"auto_generate"`
	Debounce            time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
	Levels              []LevelConfig `mapstructure:"levels" yaml:"levels" json:"levels"`
}

// Sep returns a pointer to s, for building LevelConfig literals.
func Sep(s string) *string {
	return &s
}

// Level returns the configuration for level index i (heading level
// StartLevel+i). Missing entries default to arabic with a "." separator.
func (s *Settings) Level(i int) LevelConfig {
	if i < 0 || i >= len(s.Levels) {
		return missingLevel()
	}
	return s.Levels[i]
}

// EndLevel returns the deepest heading level that receives a number.
func (s *Settings) EndLevel() int {
	return s.StartLevel + s.Depth - 1
}

// InRange reports whether headings at level receive a number.
func (s *Settings) InRange(level int) bool {
	return level >= s.StartLevel && level <= s.EndLevel()
}

// SetDepth changes the numbered depth. Level configs are appended as needed
// and never removed, so shrinking and re-growing keeps earlier edits.
func (s *Settings) SetDepth(depth int) {
	s.Depth = depth
	for len(s.Levels) < depth {
		s.Levels = append(s.Levels, DefaultLevel())
	}
}

// SetLevel replaces the configuration at index i, growing Levels if needed.
func (s *Settings) SetLevel(i int, lc LevelConfig) {
	for len(s.Levels) <= i {
		s.Levels = append(s.Levels, DefaultLevel())
	}
	s.Levels[i] = lc
}

// Clone returns a deep copy, so a snapshot cannot observe later mutation.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Levels = make([]LevelConfig, len(s.Levels))
	for i, lc := range s.Levels {
		c.Levels[i] = lc
		if lc.Separator != nil {
			c.Levels[i].Separator = Sep(*lc.Separator)
		}
	}
	return &c
}

// Normalize clamps out-of-range values and resolves style aliases in place.
// It never fails: settings are validated lazily at use.
func (s *Settings) Normalize() *Settings {
	s.StartLevel = clamp(s.StartLevel, MinLevel, MaxLevel)
	s.Depth = clamp(s.Depth, 1, MaxLevel)
	if s.Debounce <= 0 {
		s.Debounce = DefaultDebounce
	}
	s.SetDepth(s.Depth)
	for i := range s.Levels {
		if !s.Levels[i].Style.Valid() {
			if st, err := numeral.ParseStyle(string(s.Levels[i].Style)); err == nil {
				s.Levels[i].Style = st
			}
		}
		if s.Levels[i].DisplayFormat == "" {
			s.Levels[i].DisplayFormat = Placeholder
		}
	}
	return s
}

// Validate checks the settings strictly. Used when values come from the user.
func (s *Settings) Validate() error {
	if s.StartLevel < MinLevel || s.StartLevel > MaxLevel {
		return fmt.Errorf("%w: start_level %d outside %d-%d", ErrInvalidSettings, s.StartLevel, MinLevel, MaxLevel)
	}
	if s.Depth < 1 || s.Depth > MaxLevel {
		return fmt.Errorf("%w: depth %d outside 1-%d", ErrInvalidSettings, s.Depth, MaxLevel)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidSettings)
	}
	for i, lc := range s.Levels {
		if _, err := numeral.ParseStyle(string(lc.Style)); err != nil {
			return fmt.Errorf("%w: level %d: %w", ErrInvalidSettings, i+1, err)
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
