package config

import (
	"time"

	"github.com/jackzampolin/headnum/internal/numeral"
)

// DefaultDebounce is the quiet period before auto-regeneration runs.
const DefaultDebounce = 500 * time.Millisecond

// DefaultLevel is appended when depth grows past the configured levels.
func DefaultLevel() LevelConfig {
	return LevelConfig{Style: numeral.Arabic, DisplayFormat: Placeholder, Separator: Sep("")}
}

// missingLevel is used when a level index has no configuration at all.
func missingLevel() LevelConfig {
	return LevelConfig{Style: numeral.Arabic, DisplayFormat: Placeholder, Separator: Sep(".")}
}

// DefaultSettings returns configuration with sensible defaults.
func DefaultSettings() *Settings {
	styles := []numeral.Style{
		numeral.Arabic,
		numeral.LowerAlpha,
		numeral.LowerRoman,
		numeral.UpperAlpha,
		numeral.UpperRoman,
		numeral.ChineseUpper,
		numeral.Arabic,
		numeral.LowerAlpha,
	}
	levels := make([]LevelConfig, len(styles))
	for i, st := range styles {
		levels[i] = LevelConfig{Style: st, DisplayFormat: Placeholder, Separator: Sep(".")}
	}
	return &Settings{
		StartLevel:          1,
		Depth:               8,
		PrependParentNumber: true,
		RemoveExisting:      true,
		AutoGenerate:        false,
		Debounce:            DefaultDebounce,
		Levels:              levels,
	}
}

