package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Position is an X/Y coordinate with an optional rotation angle.
// Coordinates are nanometers; the angle stays in degrees.
type Position struct {
	X     int64
	Y     int64
	Angle *float64
}

func (p *Position) shapes() []shape.Shape {
	return []shape.Shape{
		shape.Leaf(&p.X, CoerceNm),
		shape.Leaf(&p.Y, CoerceNm),
		shape.Optional(shape.FloatPtr(&p.Angle)),
	}
}

// ParsePosition destructures an (at x y [angle]) element.
func ParsePosition(v sexpr.Value) (Position, error) {
	return ParsePositionAs(v, "at")
}

// ParsePositionAs destructures a position element under a different head,
// such as start, mid, end, center, or xy.
func ParsePositionAs(v sexpr.Value, head string) (Position, error) {
	var p Position
	err := shape.MatchList(v, head, p.shapes()...)
	return p, err
}

// positionAt returns a coercer for a whole (head x y [angle]) element.
func positionAt(head string) func(sexpr.Value) (Position, error) {
	return func(v sexpr.Value) (Position, error) {
		return ParsePositionAs(v, head)
	}
}

// Sexpr encodes the position as (at x y [angle]).
func (p Position) Sexpr() sexpr.Value {
	return p.SexprAs("at")
}

// SexprAs encodes the position under an alternate head symbol.
func (p Position) SexprAs(head string) sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol(head), mmValue(p.X), mmValue(p.Y)}
	if p.Angle != nil {
		items = append(items, sexpr.Float(*p.Angle))
	}
	return sexpr.List(items...)
}
