package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Property is a bare key/value pair.
type Property struct {
	Key   string
	Value string
}

// ParseProperty destructures a (property "key" "value") element.
func ParseProperty(v sexpr.Value) (Property, error) {
	var p Property
	err := shape.MatchList(v, "property",
		shape.Str(&p.Key),
		shape.Str(&p.Value),
	)
	return p, err
}

// Sexpr encodes the property.
func (p Property) Sexpr() sexpr.Value {
	return sexpr.List(sexpr.Symbol("property"), sexpr.String(p.Key), sexpr.String(p.Value))
}

// SymbolProperty is the extended property used by symbols and labels:
// key and value positionally, then optional id, position, and effects.
type SymbolProperty struct {
	Key   string
	Value string

	// ID is documented as required but absent in lib_symbols entries.
	ID *int64

	At      *Position
	Effects *TextEffects
}

// ParseSymbolProperty destructures an extended (property ...) element.
func ParseSymbolProperty(v sexpr.Value) (SymbolProperty, error) {
	var p SymbolProperty
	c, err := sexpr.RequireHead(v, "property")
	if err != nil {
		return p, err
	}
	if p.Key, err = c.Str(); err != nil {
		return p, err
	}
	if p.Value, err = c.Str(); err != nil {
		return p, err
	}
	rec := shape.NewRecord("property",
		shape.ValPtr("id", &p.ID, shape.CoerceInt),
		shape.KeyPtr("at", &p.At, ParsePosition),
		shape.KeyPtr("effects", &p.Effects, ParseTextEffects),
	)
	return p, rec.Scan(c, v)
}

// Sexpr encodes the property in schema field order.
func (p SymbolProperty) Sexpr() sexpr.Value {
	items := []sexpr.Value{
		sexpr.Symbol("property"),
		sexpr.String(p.Key),
		sexpr.String(p.Value),
	}
	if p.ID != nil {
		items = append(items, sexpr.List(sexpr.Symbol("id"), sexpr.Int(*p.ID)))
	}
	if p.At != nil {
		items = append(items, p.At.Sexpr())
	}
	if p.Effects != nil {
		items = append(items, p.Effects.Sexpr())
	}
	return sexpr.List(items...)
}
