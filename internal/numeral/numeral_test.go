package numeral

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		style Style
		want  string
	}{
		{"arabic", 42, Arabic, "42"},
		{"lower alpha first", 1, LowerAlpha, "a"},
		{"lower alpha last single", 26, LowerAlpha, "z"},
		{"lower alpha first double", 27, LowerAlpha, "aa"},
		{"lower alpha zz", 702, LowerAlpha, "zz"},
		{"lower alpha first triple", 703, LowerAlpha, "aaa"},
		{"lower alpha ceiling", 18278, LowerAlpha, "zzz"},
		{"alpha above ceiling", 18279, LowerAlpha, "18279"},
		{"upper alpha", 28, UpperAlpha, "AB"},
		{"upper roman four", 4, UpperRoman, "IV"},
		{"upper roman nine", 9, UpperRoman, "IX"},
		{"upper roman 1994", 1994, UpperRoman, "MCMXCIV"},
		{"lower roman", 14, LowerRoman, "xiv"},
		{"chinese one", 1, ChineseUpper, "一"},
		{"chinese ten", 10, ChineseUpper, "一十"},
		{"chinese twenty", 20, ChineseUpper, "二十"},
		{"chinese 101", 101, ChineseUpper, "一百零一"},
		{"chinese 110", 110, ChineseUpper, "一百一十"},
		{"chinese 100", 100, ChineseUpper, "一百"},
		{"chinese 999", 999, ChineseUpper, "九百九十九"},
		{"chinese above domain", 1000, ChineseUpper, "1000"},
		{"circled one", 1, Circled, "①"},
		{"circled twenty", 20, Circled, "⑳"},
		{"circled 21", 21, Circled, "㉑"},
		{"circled 35", 35, Circled, "㉟"},
		{"circled 36", 36, Circled, "㊱"},
		{"circled above domain", 51, Circled, "51"},
		{"unknown style", 7, Style("x"), "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.n, tt.style); got != tt.want {
				t.Errorf("Format(%d, %s) = %q, want %q", tt.n, tt.style.Name(), got, tt.want)
			}
		})
	}
}

func TestFormat_NonPositive(t *testing.T) {
	for _, s := range Styles() {
		if got := Format(0, s); got != "" {
			t.Errorf("Format(0, %s) = %q, want empty", s.Name(), got)
		}
		if got := Format(-3, s); got != "" {
			t.Errorf("Format(-3, %s) = %q, want empty", s.Name(), got)
		}
	}
}

func TestFormat_CircledUpperRange(t *testing.T) {
	for n, want := range map[int]string{41: "㊶", 45: "㊺", 50: "㊿"} {
		if got := Format(n, Circled); got != want {
			t.Errorf("Format(%d, Circled) = %q, want %q", n, got, want)
		}
	}

	seen := make(map[string]int)
	for n := 1; n <= MaxCircled; n++ {
		g := Format(n, Circled)
		if prev, ok := seen[g]; ok {
			t.Fatalf("glyph %s produced for both %d and %d", g, prev, n)
		}
		seen[g] = n
	}
}

func TestFormat_ChineseNoTrailingZero(t *testing.T) {
	for n := 1; n <= MaxChinese; n++ {
		got := Format(n, ChineseUpper)
		if got == "" {
			t.Fatalf("n=%d: empty result", n)
		}
		if strings.Contains(got, "零零") || strings.HasSuffix(got, "零") {
			t.Errorf("n=%d: bad zero placement in %q", n, got)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"1", Arabic},
		{"arabic", Arabic},
		{"Lower-Alpha", LowerAlpha},
		{"A", UpperAlpha},
		{"lower-roman", LowerRoman},
		{"I", UpperRoman},
		{"一", ChineseUpper},
		{"chinese-upper", ChineseUpper},
		{" ① ", Circled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if err != nil {
				t.Fatalf("ParseStyle(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseStyle("greek"); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("expected ErrInvalidStyle, got %v", err)
	}
}

func TestStyle_Valid(t *testing.T) {
	for _, s := range Styles() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s.Name())
		}
	}
	for _, s := range []Style{"", "arabic", "greek"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestIsRoman(t *testing.T) {
	for _, s := range []string{"I", "iv", "XIV", "mcmxciv", "xl"} {
		if !IsRoman(s) {
			t.Errorf("IsRoman(%q) = false", s)
		}
	}
	for _, s := range []string{"", "IIII", "mild", "Xiv", "VX", "civic", "abc"} {
		if IsRoman(s) {
			t.Errorf("IsRoman(%q) = true", s)
		}
	}
}
