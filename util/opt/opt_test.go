package opt

import (
	"errors"
	"strconv"
	"testing"
)

func TestOpt(t *testing.T) {
	o := New("abc")
	if o.IsNil() {
		t.Fatal("expected present")
	}
	if v, ok := o.MayGet(); !ok || v != "abc" {
		t.Fatalf("got %v %v", v, ok)
	}

	n := Nil[string]()
	if !n.IsNil() {
		t.Fatal("expected nil")
	}
	if v := n.OrElse("def"); v != "def" {
		t.Fatalf("got %v", v)
	}

	var p *int
	if np := New(p); !np.IsNil() {
		t.Fatal("typed nil pointer should be nil")
	}
}

func TestResult(t *testing.T) {
	r := Wrap(strconv.Atoi("12"))
	if r.IsErr() {
		t.Fatal(r.Err())
	}
	if r.Get() != 12 {
		t.Fatalf("got %v", r.Get())
	}

	bad := Wrap(strconv.Atoi("nope"))
	if !bad.IsErr() {
		t.Fatal("expected error")
	}
	if v := bad.OrElse(7); v != 7 {
		t.Fatalf("got %v", v)
	}

	mapped := Map(r, func(i int) string { return strconv.Itoa(i * 2) })
	if mapped.Get() != "24" {
		t.Fatalf("got %v", mapped.Get())
	}

	e := Err[int](errors.New("boom"))
	mappedErr := Map(e, func(i int) string { return "x" })
	if !mappedErr.IsErr() {
		t.Fatal("expected error to pass through")
	}
}

func TestResultMustGet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Err[int](errors.New("boom")).MustGet()
}
