package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// PaperSize is a standard ISO or ANSI page size, or User for a custom one.
type PaperSize string

const (
	PaperA0    PaperSize = "A0"
	PaperA1    PaperSize = "A1"
	PaperA2    PaperSize = "A2"
	PaperA3    PaperSize = "A3"
	PaperA4    PaperSize = "A4"
	PaperA5    PaperSize = "A5"
	PaperAnsiA PaperSize = "A"
	PaperAnsiB PaperSize = "B"
	PaperAnsiC PaperSize = "C"
	PaperAnsiD PaperSize = "D"
	PaperAnsiE PaperSize = "E"
	PaperUser  PaperSize = "User"
)

var paperSizes = []PaperSize{
	PaperA0, PaperA1, PaperA2, PaperA3, PaperA4, PaperA5,
	PaperAnsiA, PaperAnsiB, PaperAnsiC, PaperAnsiD, PaperAnsiE,
	PaperUser,
}

// Paper is the page settings element. Custom is set only for User sizes,
// which carry the dimensions inline and never a portrait marker.
type Paper struct {
	Size     PaperSize
	Custom   *Size
	Portrait bool
}

// ParsePaper destructures a (paper ...) element. Two grammars share the
// head: (paper "User" height width) and (paper "A4" [portrait]).
func ParsePaper(v sexpr.Value) (Paper, error) {
	var p Paper
	c, err := sexpr.RequireHead(v, "paper")
	if err != nil {
		return p, err
	}
	el, err := c.Next()
	if err != nil {
		return p, err
	}
	p.Size, err = enumValue(symbolize(el), paperSizes...)
	if err != nil {
		return p, err
	}
	if p.Size == PaperUser {
		size, err := sizeFromHW(c)
		if err != nil {
			return p, err
		}
		p.Custom = &size
		return p, c.End()
	}
	if !c.AtEnd() {
		if err := c.Named("portrait"); err != nil {
			return p, err
		}
		p.Portrait = true
	}
	return p, c.End()
}

// symbolize maps a quoted string atom onto its symbol form. KiCad quotes
// the paper size; the enum check works on symbols.
func symbolize(v sexpr.Value) sexpr.Value {
	if s, ok := v.(sexpr.String); ok {
		return sexpr.Symbol(string(s))
	}
	return v
}

// Sexpr encodes the page settings.
func (p Paper) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("paper"), sexpr.String(p.Size)}
	if p.Size == PaperUser && p.Custom != nil {
		items = append(items, unsignedMmValue(p.Custom.Height), unsignedMmValue(p.Custom.Width))
	} else if p.Portrait {
		items = append(items, sexpr.Symbol("portrait"))
	}
	return sexpr.List(items...)
}
