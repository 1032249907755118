package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// FillType selects how a closed graphic is filled.
type FillType string

const (
	FillNone       FillType = "none"
	FillOutline    FillType = "outline"
	FillBackground FillType = "background"
)

var fillTypes = []FillType{FillNone, FillOutline, FillBackground}

// Fill is a graphical fill definition.
type Fill struct {
	Type FillType
}

// ParseFill destructures a (fill (type ...)) element. An empty fill
// decodes as none.
func ParseFill(v sexpr.Value) (Fill, error) {
	f := Fill{Type: FillNone}
	rec := shape.NewRecord("fill",
		shape.Key("type", &f.Type, ParseFillType),
	)
	err := rec.Match(v)
	return f, err
}

// ParseFillType destructures the inner (type ...) element.
func ParseFillType(v sexpr.Value) (FillType, error) {
	c, err := sexpr.RequireHead(v, "type")
	if err != nil {
		return "", err
	}
	el, err := c.Next()
	if err != nil {
		return "", err
	}
	t, err := enumValue(el, fillTypes...)
	if err != nil {
		return "", err
	}
	return t, c.End()
}

// Sexpr encodes the fill.
func (f Fill) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("fill"),
		sexpr.List(sexpr.Symbol("type"), sexpr.Symbol(f.Type)),
	)
}
