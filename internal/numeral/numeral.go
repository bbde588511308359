// Package numeral renders heading counters in the supported numeral styles.
package numeral

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStyle is returned when a style code or name is not recognized.
var ErrInvalidStyle = errors.New("invalid numeral style")

// Style identifies a numeral rendering. The values are the codes persisted in
// settings files.
type Style string

const (
	Arabic       Style = "1"
	LowerAlpha   Style = "a"
	UpperAlpha   Style = "A"
	LowerRoman   Style = "i"
	UpperRoman   Style = "I"
	ChineseUpper Style = "一"
	Circled      Style = "①"
)

// Upper bounds of the styles with a limited domain. Values above fall back to
// decimal.
const (
	MaxAlpha   = 18278 // zzz
	MaxChinese = 999
	MaxCircled = 50
)

type styleInfo struct {
	name   string
	label  string
	format func(int) string
}

var styles = map[Style]styleInfo{
	Arabic:       {"arabic", "Arabic numerals (1, 2, 3...)", strconv.Itoa},
	LowerAlpha:   {"lower-alpha", "Lowercase letters (a, b, c...)", func(n int) string { return toLetters(n, 'a') }},
	UpperAlpha:   {"upper-alpha", "Uppercase letters (A, B, C...)", func(n int) string { return toLetters(n, 'A') }},
	LowerRoman:   {"lower-roman", "Lowercase roman numerals (i, ii, iii...)", func(n int) string { return strings.ToLower(toRoman(n)) }},
	UpperRoman:   {"upper-roman", "Uppercase roman numerals (I, II, III...)", toRoman},
	ChineseUpper: {"chinese-upper", "Chinese numerals (一, 二, 三...)", toChinese},
	Circled:      {"circled", "Circled numbers (①, ②, ③...)", toCircled},
}

// Styles returns every style in display order.
func Styles() []Style {
	return []Style{Arabic, LowerAlpha, UpperAlpha, LowerRoman, UpperRoman, ChineseUpper, Circled}
}

// ParseStyle resolves a style code ("1", "a", "①", ...) or long name
// ("arabic", "lower-roman", ...).
func ParseStyle(s string) (Style, error) {
	s = strings.TrimSpace(s)
	if _, ok := styles[Style(s)]; ok {
		return Style(s), nil
	}
	for code, info := range styles {
		if strings.EqualFold(info.name, s) {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	_, ok := styles[s]
	return ok
}

// Name returns the long name of the style, or the raw code when unknown.
func (s Style) Name() string {
	if info, ok := styles[s]; ok {
		return info.name
	}
	return string(s)
}

// Label returns a human readable description with examples.
func (s Style) Label() string {
	if info, ok := styles[s]; ok {
		return info.label
	}
	return string(s)
}

// Format renders n in the given style. Non-positive values render as the empty
// string; unknown styles and values outside a style's domain render as
// decimal.
func Format(n int, style Style) string {
	if n <= 0 {
		return ""
	}
	info, ok := styles[style]
	if !ok {
		return strconv.Itoa(n)
	}
	return info.format(n)
}

// toLetters renders n as a bijective base-26 numeral: 1→a, 26→z, 27→aa.
func toLetters(n int, base byte) string {
	if n > MaxAlpha {
		return strconv.Itoa(n)
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = base + byte(n%26)
		n /= 26
	}
	return string(buf[i:])
}

var romanTable = []struct {
	value   int
	numeral string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

func toRoman(n int) string {
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.numeral)
			n -= r.value
		}
	}
	return b.String()
}

// IsRoman reports whether s is a roman numeral in canonical subtractive form,
// written entirely in one case.
func IsRoman(s string) bool {
	if s == "" {
		return false
	}
	upper := strings.ToUpper(s)
	if s != upper && s != strings.ToLower(s) {
		return false
	}
	n, ok := parseRoman(upper)
	return ok && toRoman(n) == upper
}

func parseRoman(s string) (int, bool) {
	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := values[s[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) && values[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	return total, total > 0
}

var (
	chineseDigits = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUnits  = []string{"", "十", "百", "千"}
)

func toChinese(n int) string {
	if n > MaxChinese {
		return strconv.Itoa(n)
	}
	if n < 10 {
		return chineseDigits[n]
	}

	digits := strconv.Itoa(n)
	var b strings.Builder
	pendingZero := false
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		unit := len(digits) - 1 - i
		if d == 0 {
			pendingZero = true
			continue
		}
		if pendingZero {
			b.WriteString(chineseDigits[0])
			pendingZero = false
		}
		b.WriteString(chineseDigits[d])
		b.WriteString(chineseUnits[unit])
	}
	return b.String()
}

// circledTable holds ①..⑳ followed by ㉑..㊿.
var circledTable = []rune("①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳㉑㉒㉓㉔㉕㉖㉗㉘㉙㉚㉛㉜㉝㉞㉟㊱㊲㊳㊴㊵㊶㊷㊸㊹㊺㊻㊼㊽㊾㊿")

func toCircled(n int) string {
	if n > MaxCircled {
		return strconv.Itoa(n)
	}
	return string(circledTable[n-1])
}
