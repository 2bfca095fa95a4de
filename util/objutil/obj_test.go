package objutil

import (
	"reflect"
	"testing"
)

func TestPickOmit(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	got := Pick(m, "a", "c", "z")
	if !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Fatalf("got %v", got)
	}

	got = Omit(m, "b")
	if !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Fatalf("got %v", got)
	}

	// source map untouched
	if len(m) != 3 {
		t.Fatalf("source modified: %v", m)
	}
}

func TestMerge(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"b": 20, "c": 30}
	got := Merge(a, b)
	if !reflect.DeepEqual(got, map[string]int{"a": 1, "b": 20, "c": 30}) {
		t.Fatalf("got %v", got)
	}
	if got := Merge[string, int](); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestCopy(t *testing.T) {
	type from struct {
		Name string
		Age  int
	}
	type to struct {
		Name string
		Age  int
		Note string
	}

	v := CopyNew[to](from{Name: "bob", Age: 3})
	if v.Name != "bob" || v.Age != 3 || v.Note != "" {
		t.Fatalf("got %+v", v)
	}
}
