package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Font for text effects. Size is the only mandatory field.
type Font struct {
	// Face is a TrueType family name, or "KiCad Font" for the stroke font.
	Face *string

	// Size as a height/width pair.
	Size Size

	// Thickness in nanometers.
	Thickness *int64

	Bold   bool
	Italic bool

	// LineSpacing in nanometers.
	LineSpacing *int64
}

// ParseFont destructures a (font ...) element.
func ParseFont(v sexpr.Value) (Font, error) {
	var f Font
	rec := shape.NewRecord("font",
		shape.ValPtr("face", &f.Face, shape.CoerceStr),
		shape.Key("size", &f.Size, ParseSize).Required(),
		shape.ValPtr("thickness", &f.Thickness, CoerceNm),
		shape.BoolField("bold", &f.Bold),
		shape.BoolField("italic", &f.Italic),
		shape.ValPtr("line_spacing", &f.LineSpacing, CoerceNm),
	)
	err := rec.Match(v)
	return f, err
}

// Sexpr encodes the font in schema field order.
func (f Font) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("font")}
	if f.Face != nil {
		items = append(items, sexpr.List(sexpr.Symbol("face"), sexpr.String(*f.Face)))
	}
	items = append(items, f.Size.Sexpr())
	if f.Thickness != nil {
		items = append(items, sexpr.List(sexpr.Symbol("thickness"), mmValue(*f.Thickness)))
	}
	if f.Bold {
		items = append(items, sexpr.Symbol("bold"))
	}
	if f.Italic {
		items = append(items, sexpr.Symbol("italic"))
	}
	if f.LineSpacing != nil {
		items = append(items, sexpr.List(sexpr.Symbol("line_spacing"), mmValue(*f.LineSpacing)))
	}
	return sexpr.List(items...)
}
