package sexpr

import (
	"strings"
	"testing"
)

func TestReadAtoms(t *testing.T) {
	values, err := ReadString(`foo "bar" 42 -17 3.5 -0.25 1e3 862335ee-c981-4fe1-9eb9-84db19301dd4`)
	if err != nil {
		t.Fatalf("Failed to read atoms: %v", err)
	}
	if len(values) != 8 {
		t.Fatalf("Expected 8 values, got %d", len(values))
	}

	if s, ok := values[0].(Symbol); !ok || string(s) != "foo" {
		t.Errorf("Expected symbol foo, got %v", values[0])
	}
	if s, ok := values[1].(String); !ok || string(s) != "bar" {
		t.Errorf("Expected string bar, got %v", values[1])
	}

	n, ok := values[2].(Number)
	if !ok {
		t.Fatalf("Expected number, got %v", values[2])
	}
	if i, ok := n.Int64(); !ok || i != 42 {
		t.Errorf("Expected int 42, got %v", values[2])
	}

	n, ok = values[4].(Number)
	if !ok {
		t.Fatalf("Expected number, got %v", values[4])
	}
	if _, ok := n.Int64(); ok {
		t.Errorf("Expected 3.5 to be non-integral")
	}
	if n.Float64() != 3.5 {
		t.Errorf("Expected 3.5, got %v", n.Float64())
	}

	// A UUID has leading digits but must stay a single symbol.
	if s, ok := values[7].(Symbol); !ok || string(s) != "862335ee-c981-4fe1-9eb9-84db19301dd4" {
		t.Errorf("Expected UUID symbol, got %v", values[7])
	}
}

func TestReadList(t *testing.T) {
	values, err := ReadString(`(at 10.5 -20 90)`)
	if err != nil {
		t.Fatalf("Failed to read list: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("Expected 1 value, got %d", len(values))
	}

	head, cur, err := Head(values[0])
	if err != nil {
		t.Fatalf("Failed to destructure list: %v", err)
	}
	if head != "at" {
		t.Errorf("Expected head at, got %s", head)
	}

	x, err := cur.Float()
	if err != nil || x != 10.5 {
		t.Errorf("Expected x 10.5, got %v (err %v)", x, err)
	}
	y, err := cur.Float()
	if err != nil || y != -20 {
		t.Errorf("Expected y -20, got %v (err %v)", y, err)
	}
	angle, err := cur.Float()
	if err != nil || angle != 90 {
		t.Errorf("Expected angle 90, got %v (err %v)", angle, err)
	}
	if err := cur.End(); err != nil {
		t.Errorf("Expected end of list, got %v", err)
	}
}

func TestReadNested(t *testing.T) {
	values, err := ReadString(`(stroke (width 0.25) (type solid) (color 0 0 0 1))`)
	if err != nil {
		t.Fatalf("Failed to read nested list: %v", err)
	}
	cur, err := RequireHead(values[0], "stroke")
	if err != nil {
		t.Fatalf("Failed to require head: %v", err)
	}
	count := 0
	for !cur.AtEnd() {
		if _, err := cur.Next(); err != nil {
			t.Fatalf("Failed to advance: %v", err)
		}
		count++
	}
	if count != 3 {
		t.Errorf("Expected 3 elements, got %d", count)
	}
}

func TestReadStringEscapes(t *testing.T) {
	values, err := ReadString(`"line1\nline2 \"quoted\" back\\slash"`)
	if err != nil {
		t.Fatalf("Failed to read string: %v", err)
	}
	want := "line1\nline2 \"quoted\" back\\slash"
	if s, ok := values[0].(String); !ok || string(s) != want {
		t.Errorf("Expected %q, got %v", want, values[0])
	}
}

func TestReadComments(t *testing.T) {
	values, err := ReadString("# leading comment\n(a b) # trailing\n")
	if err != nil {
		t.Fatalf("Failed to read commented input: %v", err)
	}
	if len(values) != 1 {
		t.Errorf("Expected 1 value, got %d", len(values))
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := ReadString(`)`); err == nil {
		t.Error("Expected error for stray close paren")
	}
	if _, err := ReadString(`(a b`); err == nil {
		t.Error("Expected error for unterminated list")
	}
	if _, err := ReadString(strings.Repeat("(", 300)); err == nil {
		t.Error("Expected error for excessive nesting")
	}
}

func TestReadOne(t *testing.T) {
	if _, err := ReadOne(strings.NewReader("(a) (b)")); err == nil {
		t.Error("Expected error for two expressions")
	}
	v, err := ReadOne(strings.NewReader("(a)"))
	if err != nil {
		t.Fatalf("Failed to read single expression: %v", err)
	}
	if v.String() != "(a)" {
		t.Errorf("Expected (a), got %s", v)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	input := `(kicad_sch (version 20230121) (generator "eeschema") (wire (pts (xy 0 0) (xy 2.54 0))))`
	values, err := ReadString(input)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	printed := values[0].String()
	again, err := ReadString(printed)
	if err != nil {
		t.Fatalf("Failed to re-read printed form: %v", err)
	}
	if again[0].String() != printed {
		t.Errorf("Print not stable:\n first: %s\nsecond: %s", printed, again[0].String())
	}
}
