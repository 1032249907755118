package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Stroke describes how outlines are drawn. All fields are optional; KiCad
// omits what matches the theme default.
type Stroke struct {
	// Width in nanometers.
	Width *int64

	// Line style, written under the type key.
	Style *LineStyle

	Color *Color
}

// ParseStroke destructures a (stroke ...) element.
func ParseStroke(v sexpr.Value) (Stroke, error) {
	var s Stroke
	rec := shape.NewRecord("stroke",
		shape.ValPtr("width", &s.Width, CoerceNm),
		shape.KeyPtr("type", &s.Style, ParseLineStyle),
		shape.KeyPtr("color", &s.Color, ParseColor),
	)
	err := rec.Match(v)
	return s, err
}

// Sexpr encodes the stroke in schema field order.
func (s Stroke) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("stroke")}
	if s.Width != nil {
		items = append(items, sexpr.List(sexpr.Symbol("width"), mmValue(*s.Width)))
	}
	if s.Style != nil {
		items = append(items, s.Style.Sexpr())
	}
	if s.Color != nil {
		items = append(items, s.Color.Sexpr())
	}
	return sexpr.List(items...)
}
