package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Symbol is a library symbol or a sub-unit of one. Sub-units appear as
// nested symbol elements whose id carries the unit suffix.
type Symbol struct {
	// ID is the library id, or the unit id for sub-units.
	ID string

	// Extends names the parent symbol this one derives from.
	Extends *string

	PinNumbers PinNumberDefaults
	PinNames   PinNameDefaults

	// Undocumented but present in schematic files.
	ExcludeFromSim *bool

	InBom   *bool
	OnBoard *bool

	Properties []SymbolProperty

	// Graphics in file order across all item kinds.
	Graphics []SymbolGraphic

	Pins  []Pin
	Units []Symbol
}

// PinNumberDefaults controls pin number display for a whole symbol.
type PinNumberDefaults struct {
	Hide bool
}

// PinNameDefaults controls pin name display for a whole symbol.
type PinNameDefaults struct {
	// Offset of the name from the pin end, in nanometers.
	Offset int64

	Hide bool
}

// ParseSymbol destructures a (symbol "id" ...) element.
func ParseSymbol(v sexpr.Value) (Symbol, error) {
	var s Symbol
	c, err := sexpr.RequireHead(v, "symbol")
	if err != nil {
		return s, err
	}
	if s.ID, err = c.Str(); err != nil {
		return s, err
	}
	rec := shape.NewRecord("symbol",
		shape.ValPtr("extends", &s.Extends, shape.CoerceStr),
		shape.Key("pin_numbers", &s.PinNumbers, ParsePinNumberDefaults),
		shape.Key("pin_names", &s.PinNames, ParsePinNameDefaults),
		shape.ValPtr("exclude_from_sim", &s.ExcludeFromSim, coerceBool),
		shape.ValPtr("in_bom", &s.InBom, coerceBool),
		shape.ValPtr("on_board", &s.OnBoard, coerceBool),
		shape.Rep("property", &s.Properties, ParseSymbolProperty),
		shape.Rep("arc", &s.Graphics, graphic(ParseGraphicArc)),
		shape.Rep("bezier", &s.Graphics, graphic(ParseGraphicBezier)),
		shape.Rep("circle", &s.Graphics, graphic(ParseGraphicCircle)),
		shape.Rep("polyline", &s.Graphics, graphic(ParseGraphicPolyline)),
		shape.Rep("rectangle", &s.Graphics, graphic(ParseGraphicRectangle)),
		shape.Rep("text", &s.Graphics, graphic(ParseGraphicText)),
		shape.Rep("pin", &s.Pins, ParsePin),
		shape.Rep("symbol", &s.Units, ParseSymbol),
	)
	return s, rec.Scan(c, v)
}

// graphic lifts a concrete graphic parser to the SymbolGraphic interface.
func graphic[T SymbolGraphic](parse func(sexpr.Value) (T, error)) func(sexpr.Value) (SymbolGraphic, error) {
	return func(v sexpr.Value) (SymbolGraphic, error) {
		return parse(v)
	}
}

func coerceBool(v sexpr.Value) (bool, error) {
	s, ok := v.(sexpr.Symbol)
	if !ok {
		return false, sexpr.ErrUnexpected(v)
	}
	switch string(s) {
	case "yes", "y", "true", "t":
		return true, nil
	case "no", "n", "false", "f":
		return false, nil
	default:
		return false, sexpr.ErrUnexpected(v)
	}
}

func boolSymbol(b bool) sexpr.Value {
	if b {
		return sexpr.Symbol("yes")
	}
	return sexpr.Symbol("no")
}

// ParsePinNumberDefaults destructures a (pin_numbers ...) element.
func ParsePinNumberDefaults(v sexpr.Value) (PinNumberDefaults, error) {
	var d PinNumberDefaults
	rec := shape.NewRecord("pin_numbers",
		shape.BoolField("hide", &d.Hide),
	)
	err := rec.Match(v)
	return d, err
}

// ParsePinNameDefaults destructures a (pin_names ...) element.
func ParsePinNameDefaults(v sexpr.Value) (PinNameDefaults, error) {
	var d PinNameDefaults
	rec := shape.NewRecord("pin_names",
		shape.Val("offset", &d.Offset, CoerceNm),
		shape.BoolField("hide", &d.Hide),
	)
	err := rec.Match(v)
	return d, err
}

// IsDefault reports whether the defaults match KiCad's own and would be
// omitted from file.
func (d PinNumberDefaults) IsDefault() bool {
	return !d.Hide
}

// IsDefault reports whether the defaults match KiCad's own and would be
// omitted from file.
func (d PinNameDefaults) IsDefault() bool {
	return d.Offset == 0 && !d.Hide
}

func (d PinNumberDefaults) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("pin_numbers")}
	if d.Hide {
		items = append(items, sexpr.Symbol("hide"))
	}
	return sexpr.List(items...)
}

func (d PinNameDefaults) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("pin_names")}
	if d.Offset != 0 {
		items = append(items, sexpr.List(sexpr.Symbol("offset"), mmValue(d.Offset)))
	}
	if d.Hide {
		items = append(items, sexpr.Symbol("hide"))
	}
	return sexpr.List(items...)
}

// Sexpr encodes the symbol in schema field order.
func (s Symbol) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("symbol"), sexpr.String(s.ID)}
	if s.Extends != nil {
		items = append(items, sexpr.List(sexpr.Symbol("extends"), sexpr.String(*s.Extends)))
	}
	if !s.PinNumbers.IsDefault() {
		items = append(items, s.PinNumbers.Sexpr())
	}
	if !s.PinNames.IsDefault() {
		items = append(items, s.PinNames.Sexpr())
	}
	if s.ExcludeFromSim != nil {
		items = append(items, sexpr.List(sexpr.Symbol("exclude_from_sim"), boolSymbol(*s.ExcludeFromSim)))
	}
	if s.InBom != nil {
		items = append(items, sexpr.List(sexpr.Symbol("in_bom"), boolSymbol(*s.InBom)))
	}
	if s.OnBoard != nil {
		items = append(items, sexpr.List(sexpr.Symbol("on_board"), boolSymbol(*s.OnBoard)))
	}
	for _, p := range s.Properties {
		items = append(items, p.Sexpr())
	}
	for _, g := range s.Graphics {
		items = append(items, g.Sexpr())
	}
	for _, p := range s.Pins {
		items = append(items, p.Sexpr())
	}
	for _, u := range s.Units {
		items = append(items, u.Sexpr())
	}
	return sexpr.List(items...)
}
