package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Points is a coordinate point list: (pts (xy x y) ...).
type Points []Position

// ParsePoints destructures a pts element.
func ParsePoints(v sexpr.Value) (Points, error) {
	var pts []Position
	err := shape.MatchList(v, "pts",
		shape.Repeated(&pts, func(p *Position) shape.Shape {
			return shape.List("xy", p.shapes()...)
		}),
	)
	return Points(pts), err
}

// Sexpr encodes the point list.
func (pts Points) Sexpr() sexpr.Value {
	items := make([]sexpr.Value, 0, len(pts)+1)
	items = append(items, sexpr.Symbol("pts"))
	for _, p := range pts {
		items = append(items, p.SexprAs("xy"))
	}
	return sexpr.List(items...)
}
