package kicad

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// CoerceUUID coerces a symbol or string element into a canonical UUID.
// KiCad writes these unquoted, but some generators quote them.
func CoerceUUID(v sexpr.Value) (uuid.UUID, error) {
	var text string
	switch a := v.(type) {
	case sexpr.Symbol:
		text = string(a)
	case sexpr.String:
		text = string(a)
	default:
		return uuid.Nil, sexpr.ErrExpectedSymbol(v)
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, sexpr.ErrInvalidIdentifier(text)
	}
	return id, nil
}

// ParseUUID destructures a (uuid xxxx) element.
func ParseUUID(v sexpr.Value) (uuid.UUID, error) {
	c, err := sexpr.RequireHead(v, "uuid")
	if err != nil {
		return uuid.Nil, err
	}
	el, err := c.Next()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := CoerceUUID(el)
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.End(); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UUIDSexpr encodes id as a (uuid xxxx) element.
func UUIDSexpr(id uuid.UUID) sexpr.Value {
	return sexpr.List(sexpr.Symbol("uuid"), sexpr.Symbol(id.String()))
}
