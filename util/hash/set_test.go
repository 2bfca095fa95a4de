package hash

import "testing"

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	if !s.Has("a") || s.Has("z") {
		t.Fatal("membership mismatch")
	}
	if !s.Add("c") {
		t.Fatal("expected added")
	}
	if s.Add("c") {
		t.Fatal("expected already present")
	}
	if s.Size() != 3 {
		t.Fatalf("got %v", s.Size())
	}

	s.Del("a")
	if s.Has("a") || s.Size() != 2 {
		t.Fatal("delete failed")
	}

	s.AddAll([]string{"x", "y", "x"})
	if s.Size() != 4 {
		t.Fatalf("got %v", s.Size())
	}

	keys := s.CopyKeys()
	if len(keys) != 4 {
		t.Fatalf("got %v", keys)
	}

	empty := NewSet[int]()
	if !empty.IsEmpty() {
		t.Fatal("expected empty")
	}
	t.Log(s.String())
}

func TestSetForEach(t *testing.T) {
	s := NewSet(1, 2, 3)
	seen := 0
	s.ForEach(func(v int) bool {
		seen++
		return false
	})
	if seen != 3 {
		t.Fatalf("got %v", seen)
	}

	stopped := 0
	s.ForEach(func(v int) bool {
		stopped++
		return true
	})
	if stopped != 1 {
		t.Fatalf("got %v", stopped)
	}
}
