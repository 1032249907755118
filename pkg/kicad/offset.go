package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Offset is an X/Y displacement in nanometers.
type Offset struct {
	X int64
	Y int64
}

// ParseOffset destructures an (offset x y) element.
func ParseOffset(v sexpr.Value) (Offset, error) {
	var o Offset
	err := shape.MatchList(v, "offset",
		shape.Leaf(&o.X, CoerceNm),
		shape.Leaf(&o.Y, CoerceNm),
	)
	return o, err
}

// Sexpr encodes the offset in millimeters.
func (o Offset) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("offset"), mmValue(o.X), mmValue(o.Y))
}
