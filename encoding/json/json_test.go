package json

import (
	"strings"
	"testing"
)

type dummy struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestWriteParseJson(t *testing.T) {
	s, err := SWriteJson(dummy{Name: "bob", Age: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, `"name":"bob"`) {
		t.Fatalf("got %v", s)
	}

	v, err := SParseJsonAs[dummy](s)
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "bob" || v.Age != 3 {
		t.Fatalf("got %+v", v)
	}
}

func TestSWriteJsonString(t *testing.T) {
	// strings pass through untouched
	s, err := SWriteJson("already json")
	if err != nil {
		t.Fatal(err)
	}
	if s != "already json" {
		t.Fatalf("got %v", s)
	}
}

func TestParseJsonInvalid(t *testing.T) {
	var v dummy
	if err := SParseJson("{", &v); err == nil {
		t.Fatal("expected error")
	}
	if s := TrySWriteJson(func() {}); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestSWriteIndent(t *testing.T) {
	s, err := SWriteIndent(dummy{Name: "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "\n") {
		t.Fatalf("got %v", s)
	}
}
