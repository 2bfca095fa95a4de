package caltime

import (
	"testing"
	"time"
)

func TestParseEpoch(t *testing.T) {
	want := time.UnixMilli(1686835475123)

	v, err := Parse(int64(1686835475123))
	if err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != want.UnixMilli() {
		t.Fatalf("got %v", v)
	}

	// below the pseudo max the value is read as epoch seconds
	v, err = Parse(1686835475)
	if err != nil {
		t.Fatal(err)
	}
	if v.Unix() != want.Unix() {
		t.Fatalf("got %v", v)
	}

	v, err = Parse("1686835475123")
	if err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != want.UnixMilli() {
		t.Fatalf("got %v", v)
	}
}

func TestParseStringFormats(t *testing.T) {
	for _, s := range []string{
		"2023-06-15T13:24:35.123Z",
		"2023-06-15 13:24:35.123",
		"2023-06-15T13:24:35.123",
		"2023-06-15",
	} {
		v, err := Parse(s, Options{UTC: true})
		if err != nil {
			t.Fatalf("'%s': %v", s, err)
		}
		t.Logf("'%s' -> %v", s, v)
	}
}

func TestParseUtcHeuristic(t *testing.T) {
	want := time.Date(2023, time.June, 15, 13, 24, 35, 0, time.UTC)

	// timezone-less string read as UTC when the UTC option is set
	v, err := Parse("2023-06-15 13:24:35", Options{UTC: true})
	if err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != want.UnixMilli() {
		t.Fatalf("got %v want %v", v, want)
	}

	// explicit zone wins regardless of the option
	v, err = Parse("2023-06-15T13:24:35Z")
	if err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != want.UnixMilli() {
		t.Fatalf("got %v want %v", v, want)
	}
}

func TestParseLocalDefault(t *testing.T) {
	want := time.Date(2023, time.June, 15, 13, 24, 35, 0, time.Local)
	v, err := Parse("2023-06-15 13:24:35")
	if err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != want.UnixMilli() {
		t.Fatalf("got %v want %v", v, want)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not a time"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse(struct{}{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestAddTimeParseFormat(t *testing.T) {
	prev := parseTimeFormats
	defer func() { parseTimeFormats = prev }()

	if _, err := Parse("15/06/2023"); err == nil {
		t.Fatal("expected error before registering the format")
	}
	AddTimeParseFormat("02/01/2006")
	v, err := Parse("15/06/2023", Options{UTC: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(v, SQLDateFormat, Options{UTC: true}); got != "2023-06-15" {
		t.Fatalf("got %v", got)
	}
}

func TestScanVariants(t *testing.T) {
	var v Time
	if err := v.Scan(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if err := v.Scan([]byte("2023-06-15 13:24:35")); err != nil {
		t.Fatal(err)
	}
	if err := v.Scan(int64(1686835475123)); err != nil {
		t.Fatal(err)
	}
	if v.UnixMilli() != 1686835475123 {
		t.Fatalf("got %v", v.UnixMilli())
	}
}

func TestParseUnit(t *testing.T) {
	cases := map[string]Unit{
		"ms":           Milli,
		"milliseconds": Milli,
		"s":            Second,
		"seconds":      Second,
		"min":          Minute,
		"h":            Hour,
		"Day":          Day,
		"weeks":        Week,
		"mo":           Month,
		"months":       Month,
		"year":         Year,
	}
	for s, want := range cases {
		u, err := ParseUnit(s)
		if err != nil {
			t.Fatalf("'%s': %v", s, err)
		}
		if u != want {
			t.Fatalf("'%s': got %v want %v", s, u, want)
		}
	}
	if _, err := ParseUnit("fortnight"); err == nil {
		t.Fatal("expected error")
	}
}
