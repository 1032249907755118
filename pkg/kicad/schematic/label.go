package schematic

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/kicad"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Label names the net of the wire or bus it sits on, local to one sheet.
type Label struct {
	Text    string
	At      kicad.Position
	Effects kicad.TextEffects
	UUID    uuid.UUID
}

// ParseLabel destructures a (label "net" ...) element.
func ParseLabel(v sexpr.Value) (Label, error) {
	var l Label
	c, err := sexpr.RequireHead(v, "label")
	if err != nil {
		return l, err
	}
	if l.Text, err = c.Str(); err != nil {
		return l, err
	}
	rec := shape.NewRecord("label",
		shape.Key("at", &l.At, kicad.ParsePosition).Required(),
		shape.Key("effects", &l.Effects, kicad.ParseTextEffects).Required(),
		shape.Key("uuid", &l.UUID, kicad.ParseUUID).Required(),
	)
	return l, rec.Scan(c, v)
}

func (l Label) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("label"),
		sexpr.String(l.Text),
		l.At.Sexpr(),
		l.Effects.Sexpr(),
		kicad.UUIDSexpr(l.UUID),
	)
}

// GlobalLabelShape is the drawn outline of a global label.
type GlobalLabelShape string

const (
	GlobalLabelInput         GlobalLabelShape = "input"
	GlobalLabelOutput        GlobalLabelShape = "output"
	GlobalLabelBidirectional GlobalLabelShape = "bidirectional"
	GlobalLabelTriState      GlobalLabelShape = "tri_state"
	GlobalLabelPassive       GlobalLabelShape = "passive"
)

var globalLabelShapes = []GlobalLabelShape{
	GlobalLabelInput,
	GlobalLabelOutput,
	GlobalLabelBidirectional,
	GlobalLabelTriState,
	GlobalLabelPassive,
}

// GlobalLabel names a net visible across every sheet of the design.
type GlobalLabel struct {
	Text             string
	Shape            GlobalLabelShape
	FieldsAutoplaced bool
	At               kicad.Position
	Effects          kicad.TextEffects
	UUID             uuid.UUID
	Properties       []kicad.SymbolProperty
}

// ParseGlobalLabel destructures a (global_label "net" ...) element.
func ParseGlobalLabel(v sexpr.Value) (GlobalLabel, error) {
	var g GlobalLabel
	c, err := sexpr.RequireHead(v, "global_label")
	if err != nil {
		return g, err
	}
	if g.Text, err = c.Str(); err != nil {
		return g, err
	}
	rec := shape.NewRecord("global_label",
		shape.Val("shape", &g.Shape, coerceGlobalLabelShape).Required(),
		shape.BoolField("fields_autoplaced", &g.FieldsAutoplaced),
		shape.Key("at", &g.At, kicad.ParsePosition).Required(),
		shape.Key("effects", &g.Effects, kicad.ParseTextEffects).Required(),
		shape.Key("uuid", &g.UUID, kicad.ParseUUID).Required(),
		shape.Rep("property", &g.Properties, kicad.ParseSymbolProperty),
	)
	return g, rec.Scan(c, v)
}

func coerceGlobalLabelShape(v sexpr.Value) (GlobalLabelShape, error) {
	s, ok := v.(sexpr.Symbol)
	if ok {
		for _, a := range globalLabelShapes {
			if string(s) == string(a) {
				return a, nil
			}
		}
	}
	names := make([]string, len(globalLabelShapes))
	for i, a := range globalLabelShapes {
		names[i] = string(a)
	}
	return "", sexpr.ErrInvalidEnumSymbol(v, names...)
}

func (g GlobalLabel) Sexpr() sexpr.Value {
	items := []sexpr.Value{
		sexpr.Symbol("global_label"),
		sexpr.String(g.Text),
		sexpr.List(sexpr.Symbol("shape"), sexpr.Symbol(g.Shape)),
	}
	if g.FieldsAutoplaced {
		items = append(items, sexpr.Symbol("fields_autoplaced"))
	}
	items = append(items, g.At.Sexpr(), g.Effects.Sexpr(), kicad.UUIDSexpr(g.UUID))
	for _, p := range g.Properties {
		items = append(items, p.Sexpr())
	}
	return sexpr.List(items...)
}
