package numbering

import (
	"testing"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/numeral"
)

func TestStripAll_RemovesGeneratedNumbers(t *testing.T) {
	st := NewStripper(twoLevel(true))
	if got := st.StripAll("# 1 Title\n## 1.1 Sub"); got != "# Title\n## Sub" {
		t.Errorf("StripAll() = %q", got)
	}
}

func TestStripTitle(t *testing.T) {
	defaults := *config.DefaultSettings()

	tests := []struct {
		name  string
		s     config.Settings
		title string
		want  string
	}{
		{"plain word kept", defaults, "Title", "Title"},
		{"sentence kept", defaults, "Introduction to Go", "Introduction to Go"},
		{"word followed by digit kept", defaults, "Sub2", "Sub2"},
		{"single letter title kept", defaults, "A", "A"},
		{"arabic", defaults, "3 Results", "Results"},
		{"nested default styles", defaults, "1.a.i Details", "Details"},
		{"upper roman", defaults, "1.a.i.A.IV Deep", "Deep"},
		{"bracketed letter", defaults, "(a) Title", "Title"},
		{"circled", defaults, "① 标题", "标题"},
		{"dotted legacy number", defaults, "2.3. Method", "Method"},
		{"chinese with comma", defaults, "三、概述", "概述"},
		{
			name: "chinese chapter format",
			s: config.Settings{
				StartLevel: 1,
				Depth:      1,
				Levels: []config.LevelConfig{
					{Style: numeral.ChineseUpper, DisplayFormat: "第{}章", Separator: config.Sep("")},
				},
			},
			title: "第十二章 概述",
			want:  "概述",
		},
		{
			name: "constant literal format",
			s: config.Settings{
				StartLevel: 1,
				Depth:      2,
				Levels: []config.LevelConfig{
					{Style: numeral.Arabic, DisplayFormat: "Part {}", Separator: config.Sep(": ")},
					{Style: numeral.UpperAlpha, DisplayFormat: "{}", Separator: config.Sep("")},
				},
			},
			title: "Part 2: B Setup",
			want:  "Setup",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStripper(tt.s).StripTitle(tt.title); got != tt.want {
				t.Errorf("StripTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestStripLine(t *testing.T) {
	st := NewStripper(twoLevel(true))

	t.Run("non heading unchanged", func(t *testing.T) {
		for _, line := range []string{"1 Title", "#NoSpace", "", "######### 1 nine"} {
			if got := st.StripLine(line); got != line {
				t.Errorf("StripLine(%q) = %q", line, got)
			}
		}
	})

	t.Run("carriage return kept", func(t *testing.T) {
		if got := st.StripLine("## 1.2 Sub\r"); got != "## Sub\r" {
			t.Errorf("StripLine() = %q", got)
		}
	})

	t.Run("out of range heading stripped too", func(t *testing.T) {
		if got := st.StripLine("#### 1.2.3.4 Deep"); got != "#### Deep" {
			t.Errorf("StripLine() = %q", got)
		}
	})
}

func TestStripper_Degraded(t *testing.T) {
	s := config.Settings{
		StartLevel: 1,
		Depth:      1,
		Levels: []config.LevelConfig{
			{Style: numeral.Arabic, DisplayFormat: "\xff{}"},
		},
	}
	st := NewStripper(s)
	if !st.Degraded() {
		t.Fatal("expected a degraded stripper for an unusable format")
	}
	for _, title := range []string{"1. Title", "Title"} {
		if got := st.StripTitle(title); got != "Title" {
			t.Errorf("StripTitle(%q) = %q, want %q", title, got, "Title")
		}
	}

	if NewStripper(twoLevel(true)).Degraded() {
		t.Error("valid settings should not degrade")
	}
}

func TestStripper_Legacy(t *testing.T) {
	current := config.Settings{
		StartLevel: 1,
		Depth:      1,
		Levels: []config.LevelConfig{
			{Style: numeral.LowerAlpha, DisplayFormat: "({})"},
		},
	}
	old := config.Settings{
		StartLevel: 1,
		Depth:      1,
		Levels: []config.LevelConfig{
			{Style: numeral.Arabic, DisplayFormat: "Chapter {}"},
		},
	}

	if got := NewStripper(current).StripTitle("Chapter 3 Intro"); got != "Chapter 3 Intro" {
		t.Errorf("current settings alone stripped %q", got)
	}
	withOld := NewStripper(current, old)
	if got := withOld.StripTitle("Chapter 3 Intro"); got != "Intro" {
		t.Errorf("legacy numbering not stripped: %q", got)
	}
	if got := withOld.StripTitle("(c) Intro"); got != "Intro" {
		t.Errorf("current numbering not stripped: %q", got)
	}
}
