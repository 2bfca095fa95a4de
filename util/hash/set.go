package hash

import (
	"fmt"
	"strings"
)

// Hash Set.
//
// It's internally backed by a map. To create a new Set, use [NewSet].
type Set[T comparable] struct {
	// Keys in Set
	Keys map[T]struct{}
}

// Create new Set with the given keys.
func NewSet[T comparable](keys ...T) Set[T] {
	s := Set[T]{Keys: make(map[T]struct{}, len(keys))}
	for _, k := range keys {
		s.Keys[k] = struct{}{}
	}
	return s
}

// Test whether the key is in the set.
func (s *Set[T]) Has(key T) bool {
	_, ok := s.Keys[key]
	return ok
}

// Add key to set, return true if the key wasn't present previously.
func (s *Set[T]) Add(key T) bool {
	if s.Has(key) {
		return false
	}
	s.Keys[key] = struct{}{}
	return true
}

// Add keys to set.
func (s *Set[T]) AddAll(keys []T) {
	for _, k := range keys {
		s.Keys[k] = struct{}{}
	}
}

// Delete key.
func (s *Set[T]) Del(key T) {
	delete(s.Keys, key)
}

// Check if the Set is empty.
func (s *Set[T]) IsEmpty() bool {
	return s.Size() < 1
}

// Get the size of the Set.
func (s *Set[T]) Size() int {
	return len(s.Keys)
}

// Copy keys in set.
func (s *Set[T]) CopyKeys() []T {
	keys := make([]T, 0, len(s.Keys))
	for k := range s.Keys {
		keys = append(keys, k)
	}
	return keys
}

func (s *Set[T]) ForEach(f func(v T) (stop bool)) {
	for k := range s.Keys {
		if f(k) {
			return
		}
	}
}

// To string.
func (s Set[T]) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	i := 0
	for k := range s.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", k)
		i++
	}
	b.WriteString(" }")
	return b.String()
}
