package strutil

import (
	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Match path against the doublestar pattern, e.g., "a/**/c" matches "a/b/c".
//
// Malformed patterns never match.
func MatchPath(pattern string, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

// Match path against any of the doublestar patterns.
func MatchPathAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if MatchPath(p, path) {
			return true
		}
	}
	return false
}
