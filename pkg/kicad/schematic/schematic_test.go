package schematic

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/kicad"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

const minimalSchematic = `(kicad_sch
	(version 20250114)
	(generator "eeschema")
	(generator_version "9.0")
	(uuid "862335ee-c981-4fe1-9eb9-84db19301dd4")
	(paper "A4")
)`

func TestParseMinimalSchematic(t *testing.T) {
	sch, err := ParseString(minimalSchematic)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sch.Version == nil || *sch.Version != 20250114 {
		t.Errorf("version = %v, want 20250114", sch.Version)
	}
	if sch.Generator != "eeschema" {
		t.Errorf("generator = %q, want eeschema", sch.Generator)
	}
	if sch.UUID == nil || sch.UUID.String() != "862335ee-c981-4fe1-9eb9-84db19301dd4" {
		t.Errorf("uuid = %v", sch.UUID)
	}
	if sch.Paper == nil || sch.Paper.Size != kicad.PaperA4 {
		t.Errorf("paper = %+v", sch.Paper)
	}
}

func TestGeneratorAcceptsBareSymbol(t *testing.T) {
	// Older files write the generator unquoted.
	sch, err := ParseString(`(kicad_sch (version 20230121) (generator eeschema))`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sch.Generator != "eeschema" {
		t.Errorf("generator = %q, want eeschema", sch.Generator)
	}
}

func TestParseWires(t *testing.T) {
	sch, err := ParseString(`(kicad_sch
		(version 20250114)
		(wire (pts (xy 0 0) (xy 2.54 0))
			(stroke (width 0) (type default))
			(uuid "11111111-2222-3333-4444-555555555555"))
		(wire (pts (xy 2.54 0) (xy 2.54 1.27))
			(stroke (width 0.254) (type solid))
			(uuid "11111111-2222-3333-4444-555555555556"))
	)`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sch.Wires) != 2 {
		t.Fatalf("got %d wires, want 2", len(sch.Wires))
	}
	w := sch.Wires[0]
	if len(w.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(w.Points))
	}
	if w.Points[1].X != 2540000 || w.Points[1].Y != 0 {
		t.Errorf("point = (%d, %d), want (2540000, 0)", w.Points[1].X, w.Points[1].Y)
	}
	if sch.Wires[1].Stroke.Width == nil || *sch.Wires[1].Stroke.Width != 254000 {
		t.Errorf("stroke width = %v, want 254000", sch.Wires[1].Stroke.Width)
	}
}

func TestParseJunctionRequiresAllFields(t *testing.T) {
	_, err := ParseJunction(readOne(t, `(junction (at 2.54 1.27) (diameter 0)
		(color 0 0 0 0)
		(uuid "11111111-2222-3333-4444-555555555555"))`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	_, err = ParseJunction(readOne(t, `(junction (at 2.54 1.27) (diameter 0) (color 0 0 0 0))`))
	var pe *sexpr.ParseError
	if !asParseError(err, &pe) || pe.Kind != sexpr.KindMissingField {
		t.Fatalf("err = %v, want missing field", err)
	}
	if pe.Field != "uuid" {
		t.Errorf("missing field = %q, want uuid", pe.Field)
	}
}

func TestParseLabels(t *testing.T) {
	sch, err := ParseString(`(kicad_sch
		(version 20250114)
		(label "VCC" (at 2.54 1.27 0)
			(effects (font (size 1.27 1.27)) (justify left bottom))
			(uuid "11111111-2222-3333-4444-555555555555"))
		(global_label "RESET" (shape input) fields_autoplaced
			(at 8.7 0 180)
			(effects (font (size 1.27 1.27)) (justify right))
			(uuid "11111111-2222-3333-4444-555555555556")
			(property "Intersheetrefs" "${INTERSHEET_REFS}"))
	)`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sch.Labels) != 1 || sch.Labels[0].Text != "VCC" {
		t.Fatalf("labels = %+v", sch.Labels)
	}
	g := sch.GlobalLabels[0]
	if g.Shape != GlobalLabelInput {
		t.Errorf("shape = %q, want input", g.Shape)
	}
	if !g.FieldsAutoplaced {
		t.Error("fields_autoplaced not set")
	}
	if g.At.X != 8700000 {
		t.Errorf("x = %d, want 8700000", g.At.X)
	}
	if len(g.Properties) != 1 || g.Properties[0].Key != "Intersheetrefs" {
		t.Errorf("properties = %+v", g.Properties)
	}
}

func TestParseGlobalLabelBadShape(t *testing.T) {
	_, err := ParseGlobalLabel(readOne(t, `(global_label "X" (shape triangle)
		(at 0 0) (effects (font (size 1.27 1.27)))
		(uuid "11111111-2222-3333-4444-555555555555"))`))
	var pe *sexpr.ParseError
	if !asParseError(err, &pe) || pe.Kind != sexpr.KindInvalidEnumSymbol {
		t.Fatalf("err = %v, want invalid enum symbol", err)
	}
}

func TestParseLibSymbols(t *testing.T) {
	sch, err := ParseString(`(kicad_sch
		(version 20250114)
		(lib_symbols
			(symbol "Device:R"
				(pin_numbers hide)
				(pin_names (offset 0))
				(property "Reference" "R" (id 0) (at 1.016 0 90)
					(effects (font (size 1.27 1.27))))
				(symbol "R_0_1"
					(rectangle (start -1.016 -2.54) (end 1.016 2.54)
						(stroke (width 0.254) (type default))
						(fill (type none))))
				(symbol "R_1_1"
					(pin passive line (at 0 3.81 270) (length 1.27)
						(name "~" (effects (font (size 1.27 1.27))))
						(number "1" (effects (font (size 1.27 1.27)))))
					(pin passive line (at 0 -3.81 90) (length 1.27)
						(name "~" (effects (font (size 1.27 1.27))))
						(number "2" (effects (font (size 1.27 1.27)))))))
		)
	)`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sch.LibSymbols) != 1 {
		t.Fatalf("got %d lib symbols, want 1", len(sch.LibSymbols))
	}
	sym := sch.LibSymbols[0]
	if sym.ID != "Device:R" {
		t.Errorf("id = %q, want Device:R", sym.ID)
	}
	if !sym.PinNumbers.Hide {
		t.Error("pin_numbers hide not set")
	}
	if len(sym.Units) != 2 {
		t.Fatalf("got %d units, want 2", len(sym.Units))
	}
	if len(sym.Units[1].Pins) != 2 {
		t.Fatalf("got %d pins, want 2", len(sym.Units[1].Pins))
	}
	pin := sym.Units[1].Pins[0]
	if pin.ElectricalType != kicad.PinPassive {
		t.Errorf("pin type = %q, want passive", pin.ElectricalType)
	}
	if pin.Length != 1270000 {
		t.Errorf("pin length = %d, want 1270000", pin.Length)
	}
}

func TestUnknownTopLevelKeyRejected(t *testing.T) {
	_, err := ParseString(`(kicad_sch (version 20250114) (sheet_instances))`)
	var pe *sexpr.ParseError
	if !asParseError(err, &pe) || pe.Kind != sexpr.KindUnexpected {
		t.Fatalf("err = %v, want unexpected element", err)
	}
}

func TestDuplicatePaperRejected(t *testing.T) {
	_, err := ParseString(`(kicad_sch (paper "A4") (paper "A3"))`)
	var pe *sexpr.ParseError
	if !asParseError(err, &pe) || pe.Kind != sexpr.KindDuplicateField {
		t.Fatalf("err = %v, want duplicate field", err)
	}
	if pe.Field != "paper" {
		t.Errorf("field = %q, want paper", pe.Field)
	}
}

func TestEncodeReparseRoundTrip(t *testing.T) {
	src := `(kicad_sch
		(version 20250114)
		(generator "eeschema")
		(generator_version "9.0")
		(uuid "862335ee-c981-4fe1-9eb9-84db19301dd4")
		(paper "User" 210 297)
		(title_block (title "Test") (date "2026-08-30") (rev "A")
			(company "None") (comment 1 "first"))
		(junction (at 2.54 1.27) (diameter 0.9144) (color 0 0 0 0)
			(uuid "11111111-2222-3333-4444-555555555551"))
		(no_connect (at 100.3302 0)
			(uuid "11111111-2222-3333-4444-555555555552"))
		(bus_entry (at 0 0) (size 2.54 2.54)
			(stroke (width 0) (type default))
			(uuid "11111111-2222-3333-4444-555555555553"))
		(wire (pts (xy 0 0) (xy 2.54 0))
			(stroke (width 0) (type default))
			(uuid "11111111-2222-3333-4444-555555555554"))
		(bus (pts (xy 0 1.27) (xy 8.7 1.27))
			(stroke (width 0.254) (type dash))
			(uuid "11111111-2222-3333-4444-555555555555"))
		(polyline (pts (xy 0 0) (xy 0.635 0.635))
			(stroke (width 0) (type dot))
			(uuid "11111111-2222-3333-4444-555555555556"))
		(text "note" (at 3.81 3.81 0)
			(effects (font (size 1.27 1.27)))
			(uuid "11111111-2222-3333-4444-555555555557"))
		(label "VCC" (at 2.54 0 0)
			(effects (font (size 1.27 1.27)) (justify left bottom))
			(uuid "11111111-2222-3333-4444-555555555558"))
		(global_label "RESET" (shape input) (at 8.7 0 180)
			(effects (font (size 1.27 1.27)))
			(uuid "11111111-2222-3333-4444-555555555559"))
	)`
	first, err := ParseString(src)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}

	var sb strings.Builder
	if err := first.Encode(&sb); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	second, err := ParseString(sb.String())
	if err != nil {
		t.Fatalf("reparse failed:\n%s\nerror: %v", sb.String(), err)
	}

	// Coordinates survive the trip exactly in nanometers.
	if second.Junctions[0].At.X != 2540000 || second.Junctions[0].At.Y != 1270000 {
		t.Errorf("junction at = (%d, %d)", second.Junctions[0].At.X, second.Junctions[0].At.Y)
	}
	if second.NoConnects[0].At.X != 100330200 {
		t.Errorf("no_connect x = %d, want 100330200", second.NoConnects[0].At.X)
	}
	if second.Buses[0].Points[1].X != 8700000 {
		t.Errorf("bus x = %d, want 8700000", second.Buses[0].Points[1].X)
	}
	if *second.Buses[0].Stroke.Style != kicad.LineStyleDash {
		t.Errorf("bus style = %q, want dash", *second.Buses[0].Stroke.Style)
	}
	if second.Paper.Custom == nil || second.Paper.Custom.Height != 210000000 {
		t.Errorf("paper custom = %+v", second.Paper.Custom)
	}
	if second.TitleBlock.Comments[1] != "first" {
		t.Errorf("comments = %+v", second.TitleBlock.Comments)
	}
	if second.Labels[0].Effects.Justify.Horizontal != kicad.HorizLeft {
		t.Errorf("justify = %+v", second.Labels[0].Effects.Justify)
	}
	if second.GlobalLabels[0].UUID.String() != "11111111-2222-3333-4444-555555555559" {
		t.Errorf("uuid = %s", second.GlobalLabels[0].UUID)
	}
}

func readOne(t *testing.T, src string) sexpr.Value {
	t.Helper()
	v, err := sexpr.ReadOne(strings.NewReader(src))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return v
}

func asParseError(err error, pe **sexpr.ParseError) bool {
	return errors.As(err, pe)
}
