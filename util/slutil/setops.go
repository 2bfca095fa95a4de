package slutil

import "github.com/igen-org/igen-go/util/hash"

// Union of a and b, order follows a then b, duplicates removed.
func Union[T comparable](a []T, b []T) []T {
	s := hash.NewSet[T]()
	out := make([]T, 0, len(a)+len(b))
	for _, v := range a {
		if s.Add(v) {
			out = append(out, v)
		}
	}
	for _, v := range b {
		if s.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// Values present in both a and b, order follows a, duplicates removed.
func Intersect[T comparable](a []T, b []T) []T {
	sb := hash.NewSet(b...)
	seen := hash.NewSet[T]()
	out := make([]T, 0)
	for _, v := range a {
		if sb.Has(v) && seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

// Values present in a but not in b, order follows a, duplicates removed.
func Subtract[T comparable](a []T, b []T) []T {
	sb := hash.NewSet(b...)
	seen := hash.NewSet[T]()
	out := make([]T, 0)
	for _, v := range a {
		if !sb.Has(v) && seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}
