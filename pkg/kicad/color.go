package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Color in RGBA form. KiCad stores channels as 0-255 integers or 0-1
// floats depending on the writer; the value is kept as written.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha *float64
}

// ParseColor destructures a (color r g b [a]) element.
func ParseColor(v sexpr.Value) (Color, error) {
	var c Color
	err := shape.MatchList(v, "color",
		shape.Float(&c.Red),
		shape.Float(&c.Green),
		shape.Float(&c.Blue),
		shape.Optional(shape.FloatPtr(&c.Alpha)),
	)
	return c, err
}

// Sexpr encodes the color in schema field order.
func (c Color) Sexpr() sexpr.Value {
	items := []sexpr.Value{
		sexpr.Symbol("color"),
		sexpr.Float(c.Red),
		sexpr.Float(c.Green),
		sexpr.Float(c.Blue),
	}
	if c.Alpha != nil {
		items = append(items, sexpr.Float(*c.Alpha))
	}
	return sexpr.List(items...)
}
