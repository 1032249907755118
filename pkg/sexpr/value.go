// Package sexpr implements the s-expression value model and reader shared by
// the KiCad file parsers. Values form cons-cell lists: chains of Pair nodes
// terminated by Null. Atoms are Symbol, String, and Number. Values are never
// mutated after construction; parsers walk them through a Cursor.
package sexpr

import (
	"math"
	"strconv"
	"strings"
)

// Value is one node of an s-expression tree.
type Value interface {
	// String returns the canonical text form of the value.
	String() string

	sexprValue()
}

// Symbol is a bare (unquoted) atom.
type Symbol string

// String is a quoted string atom.
type String string

// Number is a numeric atom. It remembers whether the source text was an
// integer so that integral-representability checks are exact.
type Number struct {
	i       int64
	f       float64
	integer bool
}

// Pair is a cons cell. Proper lists chain Pairs through Cdr and end in Null.
type Pair struct {
	Car Value
	Cdr Value
}

// Null terminates a proper list.
type Null struct{}

func (Symbol) sexprValue() {}
func (String) sexprValue() {}
func (Number) sexprValue() {}
func (*Pair) sexprValue()  {}
func (Null) sexprValue()   {}

// Int returns a Number holding an integer.
func Int(i int64) Number {
	return Number{i: i, integer: true}
}

// Float returns a Number holding a floating-point value.
func Float(f float64) Number {
	return Number{f: f}
}

// Float64 returns the numeric value as a float.
func (n Number) Float64() float64 {
	if n.integer {
		return float64(n.i)
	}
	return n.f
}

// Int64 returns the numeric value as an integer if it is exactly
// representable as one.
func (n Number) Int64() (int64, bool) {
	if n.integer {
		return n.i, true
	}
	if math.Trunc(n.f) != n.f || n.f < math.MinInt64 || n.f >= math.MaxInt64 {
		return 0, false
	}
	return int64(n.f), true
}

// IsNull reports whether v is the list terminator.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// List builds a proper list from items.
func List(items ...Value) Value {
	var out Value = Null{}
	for i := len(items) - 1; i >= 0; i-- {
		out = &Pair{Car: items[i], Cdr: out}
	}
	return out
}

func (s Symbol) String() string { return string(s) }

func (s String) String() string { return quoteString(string(s)) }

func (n Number) String() string {
	if n.integer {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

func (Null) String() string { return "()" }

func (p *Pair) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	var node Value = p
	first := true
	for {
		pair, ok := node.(*Pair)
		if !ok {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(pair.Car.String())
		node = pair.Cdr
	}
	if !IsNull(node) {
		// Improper list: print the dotted tail.
		sb.WriteString(" . ")
		sb.WriteString(node.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
