// Package shape is the schema-driven matcher over s-expression values.
// A Shape describes the expected structure of part of a list; Match runs
// shapes positionally, Record runs key-dispatched fields in any order.
// Destinations are bound at construction, so a schema is built per parse
// and discarded with it.
package shape

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// Shape matches and consumes a prefix of a cursor.
type Shape interface {
	// match consumes the shape from c or fails with a *sexpr.ParseError.
	match(c *sexpr.Cursor) error

	// present reports whether the next element could begin this shape.
	// It never consumes. Drives Optional and Repeated lookahead.
	present(c *sexpr.Cursor) bool
}

// Coercer converts one element into its typed form.
type Coercer[T any] func(v sexpr.Value) (T, error)

type leaf[T any] struct {
	dst    *T
	coerce Coercer[T]
}

func (l leaf[T]) match(c *sexpr.Cursor) error {
	v, ok := c.Peek()
	if !ok {
		return sexpr.ErrExpectedList(c.Rest())
	}
	t, err := l.coerce(v)
	if err != nil {
		return err
	}
	c.Next()
	*l.dst = t
	return nil
}

func (l leaf[T]) present(c *sexpr.Cursor) bool {
	v, ok := c.Peek()
	if !ok {
		return false
	}
	_, err := l.coerce(v)
	return err == nil
}

type leafPtr[T any] struct {
	dst    **T
	coerce Coercer[T]
}

func (l leafPtr[T]) match(c *sexpr.Cursor) error {
	v, ok := c.Peek()
	if !ok {
		return sexpr.ErrExpectedList(c.Rest())
	}
	t, err := l.coerce(v)
	if err != nil {
		return err
	}
	c.Next()
	*l.dst = &t
	return nil
}

func (l leafPtr[T]) present(c *sexpr.Cursor) bool {
	v, ok := c.Peek()
	if !ok {
		return false
	}
	_, err := l.coerce(v)
	return err == nil
}

// Leaf binds one element to dst through coerce.
func Leaf[T any](dst *T, coerce Coercer[T]) Shape {
	return leaf[T]{dst: dst, coerce: coerce}
}

// LeafPtr is Leaf for optional destinations; on match dst points at the
// coerced value.
func LeafPtr[T any](dst **T, coerce Coercer[T]) Shape {
	return leafPtr[T]{dst: dst, coerce: coerce}
}

// Float binds a numeric element.
func Float(dst *float64) Shape {
	return Leaf(dst, CoerceFloat)
}

// FloatPtr binds an optional numeric element.
func FloatPtr(dst **float64) Shape {
	return LeafPtr(dst, CoerceFloat)
}

// Int binds an integral numeric element.
func Int(dst *int64) Shape {
	return Leaf(dst, CoerceInt)
}

// Str binds a string element (quoted string or bare symbol).
func Str(dst *string) Shape {
	return Leaf(dst, CoerceStr)
}

// Sym binds a bare-symbol element.
func Sym(dst *string) Shape {
	return Leaf(dst, CoerceSym)
}

// CoerceFloat accepts any numeric atom.
func CoerceFloat(v sexpr.Value) (float64, error) {
	n, ok := v.(sexpr.Number)
	if !ok {
		return 0, sexpr.ErrExpectedFloat(v)
	}
	return n.Float64(), nil
}

// CoerceInt accepts an integral numeric atom.
func CoerceInt(v sexpr.Value) (int64, error) {
	n, ok := v.(sexpr.Number)
	if !ok {
		return 0, sexpr.ErrExpectedInt(v)
	}
	i, ok := n.Int64()
	if !ok {
		return 0, sexpr.ErrExpectedInt(v)
	}
	return i, nil
}

// CoerceStr accepts a string or symbol atom.
func CoerceStr(v sexpr.Value) (string, error) {
	switch a := v.(type) {
	case sexpr.String:
		return string(a), nil
	case sexpr.Symbol:
		return string(a), nil
	default:
		return "", sexpr.ErrExpectedStr(v)
	}
}

// CoerceSym accepts a symbol atom only.
func CoerceSym(v sexpr.Value) (string, error) {
	s, ok := v.(sexpr.Symbol)
	if !ok {
		return "", sexpr.ErrExpectedSymbol(v)
	}
	return string(s), nil
}

type headedList struct {
	head string
	subs []Shape
}

func (h headedList) match(c *sexpr.Cursor) error {
	v, ok := c.Peek()
	if !ok {
		return sexpr.ErrExpectedList(c.Rest())
	}
	inner, err := sexpr.RequireHead(v, h.head)
	if err != nil {
		return err
	}
	for _, s := range h.subs {
		if err := s.match(inner); err != nil {
			return err
		}
	}
	if err := inner.End(); err != nil {
		return err
	}
	c.Next()
	return nil
}

func (h headedList) present(c *sexpr.Cursor) bool {
	v, ok := c.Peek()
	if !ok {
		return false
	}
	head, _, err := sexpr.Head(v)
	return err == nil && head == h.head
}

// List matches one element that must be a closed list (head sub...).
func List(head string, subs ...Shape) Shape {
	return headedList{head: head, subs: subs}
}

type optional struct {
	inner Shape
}

func (o optional) match(c *sexpr.Cursor) error {
	if !o.inner.present(c) {
		return nil
	}
	return o.inner.match(c)
}

func (o optional) present(c *sexpr.Cursor) bool {
	return o.inner.present(c)
}

// Optional matches its inner shape if the next element could begin it.
// One element of lookahead, no backtracking: if the element looks right
// but fails deeper in, the error propagates.
func Optional(inner Shape) Shape {
	switch inner.(type) {
	case optional, repeated:
		panic(fmt.Sprintf("shape: Optional may not wrap %T", inner))
	case flag:
		panic("shape: Optional may not wrap Flag; flags are already optional")
	}
	return optional{inner: inner}
}

type repeated struct {
	step func(c *sexpr.Cursor) (bool, error)
}

func (r repeated) match(c *sexpr.Cursor) error {
	for {
		more, err := r.step(c)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (r repeated) present(c *sexpr.Cursor) bool {
	// Zero occurrences always match.
	return true
}

// Repeated greedily matches zero or more items, appending each to dst.
// item builds the per-iteration shape around a scratch destination.
func Repeated[T any](dst *[]T, item func(scratch *T) Shape) Shape {
	probe := item(new(T))
	switch probe.(type) {
	case optional, repeated:
		panic(fmt.Sprintf("shape: Repeated may not wrap %T", probe))
	case flag:
		panic("shape: Repeated may not wrap Flag")
	}
	return repeated{step: func(c *sexpr.Cursor) (bool, error) {
		var scratch T
		s := item(&scratch)
		if !s.present(c) {
			return false, nil
		}
		if err := s.match(c); err != nil {
			return false, err
		}
		*dst = append(*dst, scratch)
		return true, nil
	}}
}

type flag struct {
	name string
	dst  *bool
}

func (f flag) match(c *sexpr.Cursor) error {
	if !f.present(c) {
		return nil
	}
	c.Next()
	*f.dst = true
	return nil
}

func (f flag) present(c *sexpr.Cursor) bool {
	v, ok := c.Peek()
	if !ok {
		return false
	}
	s, sok := v.(sexpr.Symbol)
	return sok && string(s) == f.name
}

// Flag matches the bare symbol name, setting dst true when present.
// Absence is not an error; flags decode as false by default, so wrapping
// one in Optional or Repeated is rejected at construction.
func Flag(name string, dst *bool) Shape {
	return flag{name: name, dst: dst}
}
