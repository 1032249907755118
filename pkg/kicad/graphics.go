package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// SymbolGraphic is one graphical item in a symbol body: arc, bezier,
// circle, polyline, rectangle, or text.
type SymbolGraphic interface {
	Sexpr() sexpr.Value

	symbolGraphic()
}

func (GraphicArc) symbolGraphic()       {}
func (GraphicBezier) symbolGraphic()    {}
func (GraphicCircle) symbolGraphic()    {}
func (GraphicPolyline) symbolGraphic()  {}
func (GraphicRectangle) symbolGraphic() {}
func (GraphicText) symbolGraphic()      {}

// GraphicArc is an arc through three points.
type GraphicArc struct {
	Start  Position
	Mid    Position
	End    Position
	Stroke Stroke
	Fill   Fill
}

// ParseGraphicArc destructures an (arc ...) element.
func ParseGraphicArc(v sexpr.Value) (GraphicArc, error) {
	var a GraphicArc
	rec := shape.NewRecord("arc",
		shape.Key("start", &a.Start, positionAt("start")).Required(),
		shape.Key("mid", &a.Mid, positionAt("mid")).Required(),
		shape.Key("end", &a.End, positionAt("end")).Required(),
		shape.Key("stroke", &a.Stroke, ParseStroke).Required(),
		shape.Key("fill", &a.Fill, ParseFill).Required(),
	)
	err := rec.Match(v)
	return a, err
}

func (a GraphicArc) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("arc"),
		a.Start.SexprAs("start"),
		a.Mid.SexprAs("mid"),
		a.End.SexprAs("end"),
		a.Stroke.Sexpr(),
		a.Fill.Sexpr(),
	)
}

// GraphicBezier is a cubic bezier curve over four points.
type GraphicBezier struct {
	Points Points
	Stroke Stroke
	Fill   Fill
}

// ParseGraphicBezier destructures a (bezier ...) element.
func ParseGraphicBezier(v sexpr.Value) (GraphicBezier, error) {
	var b GraphicBezier
	rec := shape.NewRecord("bezier",
		shape.Key("pts", &b.Points, ParsePoints).Required(),
		shape.Key("stroke", &b.Stroke, ParseStroke).Required(),
		shape.Key("fill", &b.Fill, ParseFill).Required(),
	)
	err := rec.Match(v)
	return b, err
}

func (b GraphicBezier) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("bezier"), b.Points.Sexpr(), b.Stroke.Sexpr(), b.Fill.Sexpr())
}

// GraphicCircle is a circle by center and radius.
type GraphicCircle struct {
	Center Position

	// Radius in unsigned nanometers.
	Radius uint64

	Stroke Stroke
	Fill   Fill
}

// ParseGraphicCircle destructures a (circle ...) element.
func ParseGraphicCircle(v sexpr.Value) (GraphicCircle, error) {
	var c GraphicCircle
	rec := shape.NewRecord("circle",
		shape.Key("center", &c.Center, positionAt("center")).Required(),
		shape.Val("radius", &c.Radius, CoerceUnsignedNm).Required(),
		shape.Key("stroke", &c.Stroke, ParseStroke).Required(),
		shape.Key("fill", &c.Fill, ParseFill).Required(),
	)
	err := rec.Match(v)
	return c, err
}

func (c GraphicCircle) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("circle"),
		c.Center.SexprAs("center"),
		sexpr.List(sexpr.Symbol("radius"), unsignedMmValue(c.Radius)),
		c.Stroke.Sexpr(),
		c.Fill.Sexpr(),
	)
}

// GraphicPolyline is an open or closed run of line segments.
type GraphicPolyline struct {
	Points Points
	Stroke Stroke
	Fill   Fill
}

// ParseGraphicPolyline destructures a (polyline ...) element.
func ParseGraphicPolyline(v sexpr.Value) (GraphicPolyline, error) {
	var p GraphicPolyline
	rec := shape.NewRecord("polyline",
		shape.Key("pts", &p.Points, ParsePoints).Required(),
		shape.Key("stroke", &p.Stroke, ParseStroke).Required(),
		shape.Key("fill", &p.Fill, ParseFill).Required(),
	)
	err := rec.Match(v)
	return p, err
}

func (p GraphicPolyline) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("polyline"), p.Points.Sexpr(), p.Stroke.Sexpr(), p.Fill.Sexpr())
}

// GraphicRectangle is a rectangle by opposite corners.
type GraphicRectangle struct {
	Start  Position
	End    Position
	Stroke Stroke
	Fill   Fill
}

// ParseGraphicRectangle destructures a (rectangle ...) element.
func ParseGraphicRectangle(v sexpr.Value) (GraphicRectangle, error) {
	var r GraphicRectangle
	rec := shape.NewRecord("rectangle",
		shape.Key("start", &r.Start, positionAt("start")).Required(),
		shape.Key("end", &r.End, positionAt("end")).Required(),
		shape.Key("stroke", &r.Stroke, ParseStroke).Required(),
		shape.Key("fill", &r.Fill, ParseFill).Required(),
	)
	err := rec.Match(v)
	return r, err
}

func (r GraphicRectangle) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("rectangle"),
		r.Start.SexprAs("start"),
		r.End.SexprAs("end"),
		r.Stroke.Sexpr(),
		r.Fill.Sexpr(),
	)
}

// GraphicText is a free text item in a symbol body.
type GraphicText struct {
	Text    string
	At      Position
	Effects TextEffects
}

// ParseGraphicText destructures a (text "..." ...) element.
func ParseGraphicText(v sexpr.Value) (GraphicText, error) {
	var t GraphicText
	c, err := sexpr.RequireHead(v, "text")
	if err != nil {
		return t, err
	}
	if t.Text, err = c.Str(); err != nil {
		return t, err
	}
	rec := shape.NewRecord("text",
		shape.Key("at", &t.At, ParsePosition).Required(),
		shape.Key("effects", &t.Effects, ParseTextEffects).Required(),
	)
	return t, rec.Scan(c, v)
}

func (t GraphicText) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("text"),
		sexpr.String(t.Text),
		t.At.Sexpr(),
		t.Effects.Sexpr(),
	)
}
