package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// PinElectricalType is the electrical class of a symbol pin.
type PinElectricalType string

const (
	PinInput         PinElectricalType = "input"
	PinOutput        PinElectricalType = "output"
	PinBidirectional PinElectricalType = "bidirectional"
	PinTriState      PinElectricalType = "tri_state"
	PinPassive       PinElectricalType = "passive"
	PinFree          PinElectricalType = "free"
	PinUnspecified   PinElectricalType = "unspecified"
	PinPowerIn       PinElectricalType = "power_in"
	PinPowerOut      PinElectricalType = "power_out"
	PinOpenCollector PinElectricalType = "open_collector"
	PinOpenEmitter   PinElectricalType = "open_emitter"
	PinNoConnect     PinElectricalType = "no_connect"
)

var pinElectricalTypes = []PinElectricalType{
	PinInput, PinOutput, PinBidirectional, PinTriState, PinPassive,
	PinFree, PinUnspecified, PinPowerIn, PinPowerOut, PinOpenCollector,
	PinOpenEmitter, PinNoConnect,
}

// PinGraphicStyle is the drawn decoration of a symbol pin.
type PinGraphicStyle string

const (
	PinStyleLine          PinGraphicStyle = "line"
	PinStyleInverted      PinGraphicStyle = "inverted"
	PinStyleClock         PinGraphicStyle = "clock"
	PinStyleInvertedClock PinGraphicStyle = "inverted_clock"
	PinStyleInputLow      PinGraphicStyle = "input_low"
	PinStyleClockLow      PinGraphicStyle = "clock_low"
	PinStyleOutputLow     PinGraphicStyle = "output_low"
	PinStyleEdgeClockHigh PinGraphicStyle = "edge_clock_high"
	PinStyleNonLogic      PinGraphicStyle = "non_logic"
)

var pinGraphicStyles = []PinGraphicStyle{
	PinStyleLine, PinStyleInverted, PinStyleClock, PinStyleInvertedClock,
	PinStyleInputLow, PinStyleClockLow, PinStyleOutputLow,
	PinStyleEdgeClockHigh, PinStyleNonLogic,
}

// PinName is the displayed name of a pin with its text effects.
type PinName struct {
	Text    string
	Effects TextEffects
}

// PinNumber is the displayed number of a pin with its text effects. Pin
// numbers are strings; BGA pins carry designators like A12.
type PinNumber struct {
	Text    string
	Effects TextEffects
}

// Pin is a symbol pin definition: electrical type and graphic style
// positionally, then keyed fields.
type Pin struct {
	ElectricalType PinElectricalType
	GraphicStyle   PinGraphicStyle
	At             Position

	// Length in nanometers. Negative lengths are legal, if odd.
	Length int64

	Name   PinName
	Number PinNumber
	Hide   bool
}

// ParsePin destructures a (pin ...) element.
func ParsePin(v sexpr.Value) (Pin, error) {
	var p Pin
	c, err := sexpr.RequireHead(v, "pin")
	if err != nil {
		return p, err
	}
	el, err := c.Next()
	if err != nil {
		return p, err
	}
	if p.ElectricalType, err = enumValue(el, pinElectricalTypes...); err != nil {
		return p, err
	}
	if el, err = c.Next(); err != nil {
		return p, err
	}
	if p.GraphicStyle, err = enumValue(el, pinGraphicStyles...); err != nil {
		return p, err
	}
	rec := shape.NewRecord("pin",
		shape.Key("at", &p.At, ParsePosition).Required(),
		shape.Val("length", &p.Length, CoerceNm).Required(),
		shape.Key("name", &p.Name, ParsePinName).Required(),
		shape.Key("number", &p.Number, ParsePinNumber).Required(),
		shape.BoolField("hide", &p.Hide),
	)
	return p, rec.Scan(c, v)
}

// ParsePinName destructures a (name "text" (effects ...)) element.
func ParsePinName(v sexpr.Value) (PinName, error) {
	var n PinName
	err := parsePinText(v, "name", &n.Text, &n.Effects)
	return n, err
}

// ParsePinNumber destructures a (number "text" (effects ...)) element.
func ParsePinNumber(v sexpr.Value) (PinNumber, error) {
	var n PinNumber
	err := parsePinText(v, "number", &n.Text, &n.Effects)
	return n, err
}

func parsePinText(v sexpr.Value, head string, text *string, effects *TextEffects) error {
	c, err := sexpr.RequireHead(v, head)
	if err != nil {
		return err
	}
	if *text, err = c.Str(); err != nil {
		return err
	}
	rec := shape.NewRecord(head,
		shape.Key("effects", effects, ParseTextEffects).Required(),
	)
	return rec.Scan(c, v)
}

// Sexpr encodes the pin in schema field order.
func (p Pin) Sexpr() sexpr.Value {
	items := []sexpr.Value{
		sexpr.Symbol("pin"),
		sexpr.Symbol(p.ElectricalType),
		sexpr.Symbol(p.GraphicStyle),
		p.At.Sexpr(),
		sexpr.List(sexpr.Symbol("length"), mmValue(p.Length)),
	}
	if p.Hide {
		items = append(items, sexpr.Symbol("hide"))
	}
	items = append(items,
		sexpr.List(sexpr.Symbol("name"), sexpr.String(p.Name.Text), p.Name.Effects.Sexpr()),
		sexpr.List(sexpr.Symbol("number"), sexpr.String(p.Number.Text), p.Number.Effects.Sexpr()),
	)
	return sexpr.List(items...)
}
