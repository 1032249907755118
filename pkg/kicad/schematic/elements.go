package schematic

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/kicad"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Junction is a wire junction dot.
type Junction struct {
	At kicad.Position

	// Diameter in unsigned nanometers; zero means the default size.
	Diameter uint64

	Color kicad.Color
	UUID  uuid.UUID
}

// ParseJunction destructures a (junction ...) element.
func ParseJunction(v sexpr.Value) (Junction, error) {
	var j Junction
	rec := shape.NewRecord("junction",
		shape.Key("at", &j.At, kicad.ParsePosition).Required(),
		shape.Val("diameter", &j.Diameter, kicad.CoerceUnsignedNm).Required(),
		shape.Key("color", &j.Color, kicad.ParseColor).Required(),
		shape.Key("uuid", &j.UUID, kicad.ParseUUID).Required(),
	)
	err := rec.Match(v)
	return j, err
}

func (j Junction) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("junction"),
		j.At.Sexpr(),
		sexpr.List(sexpr.Symbol("diameter"), sexpr.Float(kicad.MmFromUnsignedNm(j.Diameter))),
		j.Color.Sexpr(),
		kicad.UUIDSexpr(j.UUID),
	)
}

// NoConnect marks a pin as deliberately unconnected.
type NoConnect struct {
	At   kicad.Position
	UUID uuid.UUID
}

// ParseNoConnect destructures a (no_connect ...) element.
func ParseNoConnect(v sexpr.Value) (NoConnect, error) {
	var nc NoConnect
	rec := shape.NewRecord("no_connect",
		shape.Key("at", &nc.At, kicad.ParsePosition).Required(),
		shape.Key("uuid", &nc.UUID, kicad.ParseUUID).Required(),
	)
	err := rec.Match(v)
	return nc, err
}

func (nc NoConnect) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("no_connect"), nc.At.Sexpr(), kicad.UUIDSexpr(nc.UUID))
}

// BusEntry connects a wire to a bus. The size defines the far end point
// relative to the position.
type BusEntry struct {
	At     kicad.Position
	Size   kicad.Size
	Stroke kicad.Stroke
	UUID   uuid.UUID
}

// ParseBusEntry destructures a (bus_entry ...) element.
func ParseBusEntry(v sexpr.Value) (BusEntry, error) {
	var be BusEntry
	rec := shape.NewRecord("bus_entry",
		shape.Key("at", &be.At, kicad.ParsePosition).Required(),
		shape.Key("size", &be.Size, kicad.ParseSize).Required(),
		shape.Key("stroke", &be.Stroke, kicad.ParseStroke).Required(),
		shape.Key("uuid", &be.UUID, kicad.ParseUUID).Required(),
	)
	err := rec.Match(v)
	return be, err
}

func (be BusEntry) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("bus_entry"),
		be.At.Sexpr(),
		be.Size.Sexpr(),
		be.Stroke.Sexpr(),
		kicad.UUIDSexpr(be.UUID),
	)
}

// Wire is a net connection segment run.
type Wire struct {
	Points kicad.Points
	Stroke kicad.Stroke
	UUID   uuid.UUID
}

// ParseWire destructures a (wire ...) element.
func ParseWire(v sexpr.Value) (Wire, error) {
	var w Wire
	err := wireRecord("wire", &w.Points, &w.Stroke, &w.UUID).Match(v)
	return w, err
}

func (w Wire) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("wire"), w.Points.Sexpr(), w.Stroke.Sexpr(), kicad.UUIDSexpr(w.UUID))
}

// Bus is a bus segment run.
type Bus struct {
	Points kicad.Points
	Stroke kicad.Stroke
	UUID   uuid.UUID
}

// ParseBus destructures a (bus ...) element.
func ParseBus(v sexpr.Value) (Bus, error) {
	var b Bus
	err := wireRecord("bus", &b.Points, &b.Stroke, &b.UUID).Match(v)
	return b, err
}

func (b Bus) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("bus"), b.Points.Sexpr(), b.Stroke.Sexpr(), kicad.UUIDSexpr(b.UUID))
}

// GraphicPolyline is a non-electrical line run.
type GraphicPolyline struct {
	Points kicad.Points
	Stroke kicad.Stroke
	UUID   uuid.UUID
}

// ParseGraphicPolyline destructures a (polyline ...) element.
func ParseGraphicPolyline(v sexpr.Value) (GraphicPolyline, error) {
	var p GraphicPolyline
	err := wireRecord("polyline", &p.Points, &p.Stroke, &p.UUID).Match(v)
	return p, err
}

func (p GraphicPolyline) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("polyline"), p.Points.Sexpr(), p.Stroke.Sexpr(), kicad.UUIDSexpr(p.UUID))
}

// wireRecord covers the pts/stroke/uuid grammar shared by wires, buses,
// and graphical polylines.
func wireRecord(name string, pts *kicad.Points, stroke *kicad.Stroke, id *uuid.UUID) *shape.Record {
	return shape.NewRecord(name,
		shape.Key("pts", pts, kicad.ParsePoints).Required(),
		shape.Key("stroke", stroke, kicad.ParseStroke).Required(),
		shape.Key("uuid", id, kicad.ParseUUID).Required(),
	)
}

// GraphicText is free text placed on the schematic.
type GraphicText struct {
	Text    string
	At      kicad.Position
	Effects kicad.TextEffects
	UUID    uuid.UUID
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
		shape.Key("at", &t.At, kicad.ParsePosition).Required(),
		shape.Key("effects", &t.Effects, kicad.ParseTextEffects).Required(),
		shape.Key("uuid", &t.UUID, kicad.ParseUUID).Required(),
	)
	return t, rec.Scan(c, v)
}

func (t GraphicText) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("text"),
		sexpr.String(t.Text),
		t.At.Sexpr(),
		t.Effects.Sexpr(),
		kicad.UUIDSexpr(t.UUID),
	)
}
