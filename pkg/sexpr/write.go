package sexpr

import (
	"fmt"
	"io"
	"strings"
)

// Write emits v in canonical single-line form.
func Write(w io.Writer, v Value) error {
	_, err := io.WriteString(w, v.String())
	return err
}

// WriteIndent emits v in KiCad's indented layout: every list opens on its
// own line at one tab deeper than its parent, except lists containing only
// atoms, which stay inline.
func WriteIndent(w io.Writer, v Value) error {
	var sb strings.Builder
	writeIndented(&sb, v, 0)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeIndented(sb *strings.Builder, v Value, depth int) {
	p, ok := v.(*Pair)
	if !ok || atomsOnly(p) {
		sb.WriteString(v.String())
		return
	}
	sb.WriteByte('(')
	var node Value = p
	first := true
	for {
		pair, pok := node.(*Pair)
		if !pok {
			break
		}
		if _, isList := pair.Car.(*Pair); isList && !first {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("\t", depth+1))
		} else if !first {
			sb.WriteByte(' ')
		}
		first = false
		writeIndented(sb, pair.Car, depth+1)
		node = pair.Cdr
	}
	if !IsNull(node) {
		sb.WriteString(" . ")
		sb.WriteString(node.String())
	}
	if hasListChild(p) {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("\t", depth))
	}
	sb.WriteByte(')')
}

func atomsOnly(p *Pair) bool {
	var node Value = p
	for {
		pair, ok := node.(*Pair)
		if !ok {
			return true
		}
		if _, isList := pair.Car.(*Pair); isList {
			return false
		}
		node = pair.Cdr
	}
}

func hasListChild(p *Pair) bool {
	return !atomsOnly(p)
}

// Fprint writes each top-level value on its own line.
func Fprint(w io.Writer, vs ...Value) error {
	for _, v := range vs {
		if err := WriteIndent(w, v); err != nil {
			return fmt.Errorf("writing expression: %w", err)
		}
	}
	return nil
}
