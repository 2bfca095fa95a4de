package strutil

import (
	"strings"
	"unicode"
)

// Convert "foo_bar" / "foo-bar" to "fooBar".
func CamelCase(s string) string {
	upper := false
	b := strings.Builder{}
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Convert "foo_bar" / "foo-bar" / "fooBar" to "FooBar".
func PascalCase(s string) string {
	c := CamelCase(s)
	if c == "" {
		return c
	}
	ru := []rune(c)
	ru[0] = unicode.ToUpper(ru[0])
	return string(ru)
}

// Convert "fooBar" / "foo-bar" to "foo_bar".
func SnakeCase(s string) string {
	return delimitCase(s, '_')
}

// Convert "fooBar" / "foo_bar" to "foo-bar".
func KebabCase(s string) string {
	return delimitCase(s, '-')
}

func delimitCase(s string, delim rune) string {
	b := strings.Builder{}
	prevLower := false
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(delim)
			prevLower = false
			continue
		}
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteRune(delim)
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}
