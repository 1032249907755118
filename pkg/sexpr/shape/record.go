package shape

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// Field is one keyed slot of a Record. Fields are optional and singular
// unless marked otherwise.
type Field struct {
	key      string
	required bool
	repeated bool
	isFlag   bool
	flagDst  *bool
	match    func(el sexpr.Value) error
	seen     bool
}

// Required marks the field as mandatory; an unseen required field becomes
// a MissingField error after the scan.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

// Key binds a field whose whole element, head included, is handed to parse.
// Used for nested records with their own matcher.
func Key[T any](key string, dst *T, parse Coercer[T]) *Field {
	return &Field{key: key, match: func(el sexpr.Value) error {
		t, err := parse(el)
		if err != nil {
			return err
		}
		*dst = t
		return nil
	}}
}

// KeyPtr is Key for optional destinations.
func KeyPtr[T any](key string, dst **T, parse Coercer[T]) *Field {
	return &Field{key: key, match: func(el sexpr.Value) error {
		t, err := parse(el)
		if err != nil {
			return err
		}
		*dst = &t
		return nil
	}}
}

// Val binds a field of the form (key payload): one coerced payload
// element after the key, then the list must end.
func Val[T any](key string, dst *T, coerce Coercer[T]) *Field {
	return Key(key, dst, payload(key, coerce))
}

// ValPtr is Val for optional destinations.
func ValPtr[T any](key string, dst **T, coerce Coercer[T]) *Field {
	return KeyPtr(key, dst, payload(key, coerce))
}

func payload[T any](key string, coerce Coercer[T]) Coercer[T] {
	return func(el sexpr.Value) (T, error) {
		var zero T
		c, err := sexpr.RequireHead(el, key)
		if err != nil {
			return zero, err
		}
		v, ok := c.Peek()
		if !ok {
			return zero, sexpr.ErrExpectedList(c.Rest())
		}
		t, err := coerce(v)
		if err != nil {
			return zero, err
		}
		c.Next()
		if err := c.End(); err != nil {
			return zero, err
		}
		return t, nil
	}
}

// Rep binds a repeatable field appending each occurrence to dst. Several
// Rep fields may share one destination slice; appends happen in input
// order, so heterogeneous children interleave the way the file wrote them.
func Rep[T any](key string, dst *[]T, parse Coercer[T]) *Field {
	return &Field{key: key, repeated: true, match: func(el sexpr.Value) error {
		t, err := parse(el)
		if err != nil {
			return err
		}
		*dst = append(*dst, t)
		return nil
	}}
}

// BoolField binds a boolean field accepting both spellings KiCad writers
// use: the bare symbol key and the list (key yes|no).
func BoolField(key string, dst *bool) *Field {
	return &Field{key: key, isFlag: true, flagDst: dst, match: func(el sexpr.Value) error {
		c, err := sexpr.RequireHead(el, key)
		if err != nil {
			return err
		}
		b, err := c.Bool()
		if err != nil {
			return err
		}
		if err := c.End(); err != nil {
			return err
		}
		*dst = b
		return nil
	}}
}

// Record matches a keyed list: order-independent fields dispatched by key,
// unknown keys and duplicate singular fields rejected, required fields
// checked after the scan in declaration order.
type Record struct {
	name   string
	fields []*Field
	byKey  map[string]*Field
}

// NewRecord builds a keyed matcher. Duplicate keys in the schema are a
// programmer error and panic.
func NewRecord(name string, fields ...*Field) *Record {
	byKey := make(map[string]*Field, len(fields))
	for _, f := range fields {
		if _, dup := byKey[f.key]; dup {
			panic(fmt.Sprintf("shape: record %s declares field %s twice", name, f.key))
		}
		byKey[f.key] = f
	}
	return &Record{name: name, fields: fields, byKey: byKey}
}

// Match destructures v as (name field...) and scans the fields.
func (r *Record) Match(v sexpr.Value) error {
	c, err := sexpr.RequireHead(v, r.name)
	if err != nil {
		return err
	}
	return r.Scan(c, v)
}

// Scan runs the keyed pass over the elements remaining at c. Records with
// a positional prefix consume it on the cursor first and then call Scan.
// whole is the full record value reported by field errors.
func (r *Record) Scan(c *sexpr.Cursor, whole sexpr.Value) error {
	for !c.AtEnd() {
		el, err := c.Next()
		if err != nil {
			return err
		}
		var f *Field
		switch e := el.(type) {
		case sexpr.Symbol:
			f = r.byKey[string(e)]
			if f == nil || !f.isFlag {
				return sexpr.ErrUnexpected(el)
			}
			if f.seen {
				return sexpr.ErrDuplicateField(r.name, f.key, whole)
			}
			f.seen = true
			*f.flagDst = true
			continue
		case *sexpr.Pair:
			head, _, err := sexpr.Head(el)
			if err != nil {
				return err
			}
			f = r.byKey[head]
			if f == nil {
				return sexpr.ErrUnexpected(el)
			}
		default:
			return sexpr.ErrUnexpected(el)
		}
		if f.seen && !f.repeated {
			return sexpr.ErrDuplicateField(r.name, f.key, whole)
		}
		f.seen = true
		if err := f.match(el); err != nil {
			return err
		}
	}
	for _, f := range r.fields {
		if f.required && !f.seen {
			return sexpr.ErrMissingField(r.name, f.key, whole)
		}
	}
	return nil
}
