package config

import (
	"context"
	"errors"
	"testing"

	"github.com/jackzampolin/headnum/internal/numeral"
)

func testContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithCancel(t.Context())
}

func TestSettings_Level(t *testing.T) {
	s := &Settings{StartLevel: 1, Depth: 3, Levels: []LevelConfig{
		{Style: numeral.UpperRoman, DisplayFormat: "{}", Separator: Sep("-")},
	}}

	if got := s.Level(0).Style; got != numeral.UpperRoman {
		t.Errorf("Level(0).Style = %q", got)
	}

	missing := s.Level(2)
	if missing.Style != numeral.Arabic {
		t.Errorf("missing level style = %q, want arabic", missing.Style)
	}
	if sep, ok := missing.Sep(); !ok || sep != "." {
		t.Errorf("missing level separator = %q, want '.'", sep)
	}
}

func TestSettings_SetDepth(t *testing.T) {
	s := &Settings{StartLevel: 1, Depth: 1, Levels: []LevelConfig{
		{Style: numeral.Circled, DisplayFormat: "{}"},
	}}

	s.SetDepth(4)
	if len(s.Levels) != 4 {
		t.Fatalf("len(Levels) = %d, want 4", len(s.Levels))
	}
	for i := 1; i < 4; i++ {
		lc := s.Levels[i]
		sep, ok := lc.Sep()
		if lc.Style != numeral.Arabic || lc.DisplayFormat != Placeholder || !ok || sep != "" {
			t.Errorf("appended level %d = %+v", i, lc)
		}
	}

	s.SetDepth(2)
	if len(s.Levels) != 4 {
		t.Errorf("shrinking depth removed level configs: len = %d", len(s.Levels))
	}
	if s.Levels[0].Style != numeral.Circled {
		t.Error("existing level config overwritten")
	}
}

func TestSettings_InRange(t *testing.T) {
	s := &Settings{StartLevel: 2, Depth: 3}
	tests := []struct {
		level int
		want  bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tt := range tests {
		if got := s.InRange(tt.level); got != tt.want {
			t.Errorf("InRange(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
	if s.EndLevel() != 4 {
		t.Errorf("EndLevel() = %d, want 4", s.EndLevel())
	}
}

func TestSettings_Normalize(t *testing.T) {
	s := &Settings{StartLevel: 0, Depth: 20, Levels: []LevelConfig{
		{Style: "upper-roman"},
	}}
	s.Normalize()

	if s.StartLevel != 1 || s.Depth != 8 {
		t.Errorf("clamped to start %d depth %d", s.StartLevel, s.Depth)
	}
	if len(s.Levels) != 8 {
		t.Errorf("len(Levels) = %d, want 8", len(s.Levels))
	}
	if s.Levels[0].Style != numeral.UpperRoman {
		t.Errorf("alias not resolved: %q", s.Levels[0].Style)
	}
	if s.Levels[0].DisplayFormat != Placeholder {
		t.Errorf("empty format not defaulted: %q", s.Levels[0].DisplayFormat)
	}
	if s.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v", s.Debounce)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"start level zero", func(s *Settings) { s.StartLevel = 0 }},
		{"start level nine", func(s *Settings) { s.StartLevel = 9 }},
		{"depth zero", func(s *Settings) { s.Depth = 0 }},
		{"unknown style", func(s *Settings) { s.Levels[2].Style = "greek" }},
		{"negative debounce", func(s *Settings) { s.Debounce = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"empty", "", false},
		{"integer style", "levels:\n  - style: 1\n", false},
		{"named style", "levels:\n  - style: circled\n    separator: \"、\"\n", false},
		{"duration string", "debounce: 250ms\n", false},
		{"unknown key", "colour: red\n", true},
		{"bad style", "levels:\n  - style: greek\n", true},
		{"start level out of range", "start_level: 0\n", true},
		{"not yaml", "levels: [\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
