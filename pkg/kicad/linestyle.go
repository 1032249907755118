package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// LineStyle is a stroke line style.
type LineStyle string

const (
	LineStyleDash       LineStyle = "dash"
	LineStyleDashDot    LineStyle = "dash_dot"
	LineStyleDashDotDot LineStyle = "dash_dot_dot"
	LineStyleDot        LineStyle = "dot"
	LineStyleDefault    LineStyle = "default"
	LineStyleSolid      LineStyle = "solid"
)

var lineStyles = []LineStyle{
	LineStyleDash,
	LineStyleDashDot,
	LineStyleDashDotDot,
	LineStyleDot,
	LineStyleDefault,
	LineStyleSolid,
}

// ParseLineStyle destructures a (type style) element.
func ParseLineStyle(v sexpr.Value) (LineStyle, error) {
	c, err := sexpr.RequireHead(v, "type")
	if err != nil {
		return "", err
	}
	el, err := c.Next()
	if err != nil {
		return "", err
	}
	style, err := enumValue(el, lineStyles...)
	if err != nil {
		return "", err
	}
	return style, c.End()
}

// Sexpr encodes the style as a (type style) element.
func (s LineStyle) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("type"), sexpr.Symbol(s))
}
