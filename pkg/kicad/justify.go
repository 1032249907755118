package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// HorizJustify is horizontal text justification. Center is the default
// and is never written to file.
type HorizJustify string

const (
	HorizLeft   HorizJustify = "left"
	HorizCenter HorizJustify = "center"
	HorizRight  HorizJustify = "right"
)

// VertJustify is vertical text justification. Center is the default and
// is never written to file.
type VertJustify string

const (
	VertTop    VertJustify = "top"
	VertCenter VertJustify = "center"
	VertBottom VertJustify = "bottom"
)

// TextJustify is a (justify ...) element: bare symbols choosing the
// horizontal and vertical alignment plus an optional mirror marker.
type TextJustify struct {
	Horizontal HorizJustify
	Vertical   VertJustify
	Mirror     bool
}

// ParseTextJustify destructures a justify element. The grammar is a flat
// symbol set rather than keyed fields, so it is walked by hand.
func ParseTextJustify(v sexpr.Value) (TextJustify, error) {
	j := TextJustify{Horizontal: HorizCenter, Vertical: VertCenter}
	c, err := sexpr.RequireHead(v, "justify")
	if err != nil {
		return j, err
	}
	for !c.AtEnd() {
		el, err := c.Next()
		if err != nil {
			return j, err
		}
		s, ok := el.(sexpr.Symbol)
		if !ok {
			return j, sexpr.ErrUnexpected(el)
		}
		switch string(s) {
		case "left":
			j.Horizontal = HorizLeft
		case "right":
			j.Horizontal = HorizRight
		case "top":
			j.Vertical = VertTop
		case "bottom":
			j.Vertical = VertBottom
		case "mirror":
			j.Mirror = true
		default:
			return j, sexpr.ErrUnexpected(el)
		}
	}
	return j, nil
}

// Sexpr encodes the justification, omitting centered axes.
func (j TextJustify) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("justify")}
	if j.Horizontal != HorizCenter {
		items = append(items, sexpr.Symbol(j.Horizontal))
	}
	if j.Vertical != VertCenter {
		items = append(items, sexpr.Symbol(j.Vertical))
	}
	if j.Mirror {
		items = append(items, sexpr.Symbol("mirror"))
	}
	return sexpr.List(items...)
}
