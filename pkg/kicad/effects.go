package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// TextEffects controls how a text item is rendered.
type TextEffects struct {
	Font    *Font
	Justify *TextJustify
	Hide    bool
}

// ParseTextEffects destructures an (effects ...) element.
func ParseTextEffects(v sexpr.Value) (TextEffects, error) {
	var e TextEffects
	rec := shape.NewRecord("effects",
		shape.KeyPtr("font", &e.Font, ParseFont),
		shape.KeyPtr("justify", &e.Justify, ParseTextJustify),
		shape.BoolField("hide", &e.Hide),
	)
	err := rec.Match(v)
	return e, err
}

// Sexpr encodes the effects in schema field order.
func (e TextEffects) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("effects")}
	if e.Font != nil {
		items = append(items, e.Font.Sexpr())
	}
	if e.Justify != nil {
		items = append(items, e.Justify.Sexpr())
	}
	if e.Hide {
		items = append(items, sexpr.Symbol("hide"))
	}
	return sexpr.List(items...)
}
