package strutil

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/width"
)

// Check if the string is blank.
func IsBlankStr(s string) bool {
	return s == "" || strings.TrimSpace(s) == ""
}

// Substring such that len([]rune(s)) <= max.
func MaxLenStr(s string, max int) string {
	ru := []rune(s)
	if len(ru) <= max {
		return s
	}
	return string(ru[:max])
}

// Pad n with leading zeros until it has at least digit digits.
func PadNum(n int, digit int) string {
	num := cast.ToString(n)
	if pad := digit - len(num); pad > 0 {
		return strings.Repeat("0", pad) + num
	}
	return num
}

// Pad s with trailing spaces until its display width reaches w.
//
// East-asian wide characters count as two cells.
func PadToWidth(s string, w int) string {
	cur := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cur += 2
		default:
			cur += 1
		}
	}
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

// Check if s has the prefix in a case-insensitive way.
func HasPrefixIgnoreCase(s string, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// Check if s has the suffix in a case-insensitive way.
func HasSuffixIgnoreCase(s string, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// Cut prefix from s in a case-insensitive way.
func CutPrefixIgnoreCase(s string, prefix string) (string, bool) {
	if HasPrefixIgnoreCase(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// Cut suffix from s in a case-insensitive way.
func CutSuffixIgnoreCase(s string, suffix string) (string, bool) {
	if HasSuffixIgnoreCase(s, suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

func EqualAnyStr(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

func QuoteStr(s string) string {
	return "\"" + s + "\""
}

func UnquoteStr(s string) string {
	ru := []rune(s)
	if len(ru) < 2 {
		return s
	}
	r1 := ru[0]
	if (r1 == '"' || r1 == '\'') && ru[len(ru)-1] == r1 {
		return string(ru[1 : len(ru)-1])
	}
	return s
}

// Convert anything to its string representation.
func ToStr(v any) string {
	return cast.ToString(v)
}

func Spaces(count int) string {
	return strings.Repeat(" ", count)
}
