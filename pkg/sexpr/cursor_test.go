package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, src string) Value {
	t.Helper()
	values, err := ReadString(src)
	require.NoError(t, err)
	require.Len(t, values, 1)
	return values[0]
}

func TestCursorCoercions(t *testing.T) {
	v := mustRead(t, `(rec 1.5 7 "text" sym)`)
	cur, err := RequireHead(v, "rec")
	require.NoError(t, err)

	f, err := cur.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	i, err := cur.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	s, err := cur.Str()
	require.NoError(t, err)
	assert.Equal(t, "text", s)

	sym, err := cur.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "sym", sym)

	assert.NoError(t, cur.End())
}

func TestCursorKindMismatches(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
		op   func(c *Cursor) error
	}{
		{"float on symbol", `(r x)`, KindExpectedFloat, func(c *Cursor) error { _, err := c.Float(); return err }},
		{"int on float", `(r 1.5)`, KindExpectedInt, func(c *Cursor) error { _, err := c.Int(); return err }},
		{"int on string", `(r "1")`, KindExpectedInt, func(c *Cursor) error { _, err := c.Int(); return err }},
		{"str on number", `(r 42)`, KindExpectedStr, func(c *Cursor) error { _, err := c.Str(); return err }},
		{"symbol on string", `(r "s")`, KindExpectedSymbol, func(c *Cursor) error { _, err := c.Symbol(); return err }},
		{"named mismatch", `(r other)`, KindExpectedNamedSymbol, func(c *Cursor) error { return c.Named("wanted") }},
		{"end with leftovers", `(r 1)`, KindExpectedNil, func(c *Cursor) error { return c.End() }},
		{"float at end", `(r)`, KindExpectedList, func(c *Cursor) error { _, err := c.Float(); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur, err := RequireHead(mustRead(t, tc.src), "r")
			require.NoError(t, err)
			err = tc.op(cur)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.kind, pe.Kind)
		})
	}
}

func TestCursorIntAcceptsIntegralFloat(t *testing.T) {
	cur, err := RequireHead(mustRead(t, `(r 20230121)`), "r")
	require.NoError(t, err)
	i, err := cur.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(20230121), i)
}

func TestCursorStrAcceptsSymbol(t *testing.T) {
	cur, err := RequireHead(mustRead(t, `(generator eeschema)`), "generator")
	require.NoError(t, err)
	s, err := cur.Str()
	require.NoError(t, err)
	assert.Equal(t, "eeschema", s)
}

func TestCursorBool(t *testing.T) {
	truthy := []string{"yes", "y", "true", "t"}
	falsy := []string{"no", "n", "false", "f"}

	for _, sym := range truthy {
		cur := NewCursor(List(Symbol(sym)))
		b, err := cur.Bool()
		require.NoError(t, err, sym)
		assert.True(t, b, sym)
	}
	for _, sym := range falsy {
		cur := NewCursor(List(Symbol(sym)))
		b, err := cur.Bool()
		require.NoError(t, err, sym)
		assert.False(t, b, sym)
	}

	// Exhausted cursor reads as false.
	cur := NewCursor(Null{})
	b, err := cur.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	// Anything else is Unexpected.
	cur = NewCursor(List(Symbol("maybe")))
	_, err = cur.Bool()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindUnexpected, pe.Kind)
}

func TestHeadDestructuring(t *testing.T) {
	head, cur, err := Head(mustRead(t, `(wire 1 2)`))
	require.NoError(t, err)
	assert.Equal(t, "wire", head)
	assert.False(t, cur.AtEnd())

	_, _, err = Head(Symbol("bare"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindExpectedList, pe.Kind)

	_, _, err = Head(List(Int(1)))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindExpectedSymbol, pe.Kind)

	_, err = RequireHead(mustRead(t, `(bus 1)`), "wire")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindExpectedNamedSymbol, pe.Kind)
	assert.Equal(t, "wire", pe.Symbol)
}

func TestErrorsCarryOffendingValue(t *testing.T) {
	cur, err := RequireHead(mustRead(t, `(r "oops")`), "r")
	require.NoError(t, err)
	_, err = cur.Float()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, String("oops"), pe.Value)
	assert.Contains(t, pe.Error(), `"oops"`)
}
