package slutil

// Select first from the slice that matches the condition.
func FirstMatch[T any](items []T, f func(T) bool) (T, bool) {
	for i := range items {
		if f(items[i]) {
			return items[i], true
		}
	}
	var t T
	return t, false
}

// Check if any value in the slice matches the condition.
func AnyMatch[T any](items []T, f func(T) bool) bool {
	_, ok := FirstMatch(items, f)
	return ok
}

// Check if the slice contains the value.
func Contains[T comparable](items []T, v T) bool {
	return IndexOf(items, v) > -1
}

// Index of the value in the slice, -1 if not found.
func IndexOf[T comparable](items []T, v T) int {
	for i := range items {
		if items[i] == v {
			return i
		}
	}
	return -1
}

// Filter duplicate values, the first occurrence wins and order is preserved.
func Distinct[T comparable](l []T) []T {
	seen := make(map[T]struct{}, len(l))
	out := make([]T, 0, len(l))
	for _, v := range l {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Filter slice values in place.
//
// Be cautious that both slices are backed by the same array.
func Filter[T any](l []T, f func(T) bool) []T {
	cp := l[:0]
	for i := range l {
		if f(l[i]) {
			cp = append(cp, l[i])
		}
	}
	for i := len(cp); i < len(l); i++ {
		var tv T
		l[i] = tv
	}
	return cp
}

// Filter slice values.
//
// The original slice is not modified, matching values are copied.
func CopyFilter[T any](l []T, f func(T) bool) []T {
	cp := make([]T, 0, len(l))
	for i := range l {
		if f(l[i]) {
			cp = append(cp, l[i])
		}
	}
	return cp
}

// Map slice items to another type.
func MapTo[T any, V any](ts []T, mapFunc func(t T) V) []V {
	if len(ts) < 1 {
		return []V{}
	}
	vs := make([]V, 0, len(ts))
	for i := range ts {
		vs = append(vs, mapFunc(ts[i]))
	}
	return vs
}

// Split the slice into chunks of at most size items.
func Chunk[T any](l []T, size int) [][]T {
	if size < 1 || len(l) < 1 {
		return [][]T{}
	}
	out := make([][]T, 0, (len(l)+size-1)/size)
	for i := 0; i < len(l); i += size {
		j := i + size
		if j > len(l) {
			j = len(l)
		}
		out = append(out, l[i:j])
	}
	return out
}
