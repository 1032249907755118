package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

type strokeRec struct {
	width *float64
	style *string
}

func strokeRecord(s *strokeRec) *Record {
	return NewRecord("stroke",
		ValPtr("width", &s.width, CoerceFloat),
		ValPtr("type", &s.style, CoerceSym),
	)
}

func TestRecordOrderIndependent(t *testing.T) {
	for _, src := range []string{
		`(stroke (width 0.25) (type solid))`,
		`(stroke (type solid) (width 0.25))`,
	} {
		var s strokeRec
		require.NoError(t, strokeRecord(&s).Match(read(t, src)), src)
		require.NotNil(t, s.width, src)
		require.NotNil(t, s.style, src)
		assert.Equal(t, 0.25, *s.width, src)
		assert.Equal(t, "solid", *s.style, src)
	}
}

func TestRecordOptionalFieldsStayUnset(t *testing.T) {
	var s strokeRec
	require.NoError(t, strokeRecord(&s).Match(read(t, `(stroke)`)))
	assert.Nil(t, s.width)
	assert.Nil(t, s.style)
}

func TestRecordDuplicateField(t *testing.T) {
	var s strokeRec
	err := strokeRecord(&s).Match(read(t, `(stroke (width 1) (width 2))`))
	var pe *sexpr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, sexpr.KindDuplicateField, pe.Kind)
	assert.Equal(t, "stroke", pe.Record)
	assert.Equal(t, "width", pe.Field)
}

func TestRecordUnknownKey(t *testing.T) {
	var s strokeRec
	err := strokeRecord(&s).Match(read(t, `(stroke (width 1) (glow 2))`))
	var pe *sexpr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, sexpr.KindUnexpected, pe.Kind)
	assert.Equal(t, "(glow 2)", pe.Value.String())
}

func TestRecordMissingFieldsInDeclarationOrder(t *testing.T) {
	var a, b string
	rec := NewRecord("rec",
		Val("first", &a, CoerceSym).Required(),
		Val("second", &b, CoerceSym).Required(),
	)
	err := rec.Match(read(t, `(rec)`))
	var pe *sexpr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, sexpr.KindMissingField, pe.Kind)
	assert.Equal(t, "first", pe.Field)

	// With the first present, the second is reported.
	a, b = "", ""
	rec = NewRecord("rec",
		Val("first", &a, CoerceSym).Required(),
		Val("second", &b, CoerceSym).Required(),
	)
	err = rec.Match(read(t, `(rec (first x))`))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "second", pe.Field)
}

func TestRecordRepeatedAppends(t *testing.T) {
	var names []string
	rec := NewRecord("rec",
		Rep("name", &names, func(el sexpr.Value) (string, error) {
			c, err := sexpr.RequireHead(el, "name")
			if err != nil {
				return "", err
			}
			return c.Str()
		}),
	)
	require.NoError(t, rec.Match(read(t, `(rec (name "a") (name "b") (name "c"))`)))
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRecordSharedRepeatedSliceKeepsInputOrder(t *testing.T) {
	// Two keys appending to one slice interleave in file order.
	var items []string
	keyText := func(key string) Coercer[string] {
		return func(el sexpr.Value) (string, error) {
			c, err := sexpr.RequireHead(el, key)
			if err != nil {
				return "", err
			}
			s, err := c.Str()
			if err != nil {
				return "", err
			}
			return key + ":" + s, c.End()
		}
	}
	rec := NewRecord("rec",
		Rep("wire", &items, keyText("wire")),
		Rep("bus", &items, keyText("bus")),
	)
	require.NoError(t, rec.Match(read(t, `(rec (wire "w1") (bus "b1") (wire "w2"))`)))
	assert.Equal(t, []string{"wire:w1", "bus:b1", "wire:w2"}, items)
}

func TestBoolFieldBothSpellings(t *testing.T) {
	var hide bool
	require.NoError(t, NewRecord("effects", BoolField("hide", &hide)).
		Match(read(t, `(effects hide)`)))
	assert.True(t, hide)

	hide = false
	require.NoError(t, NewRecord("effects", BoolField("hide", &hide)).
		Match(read(t, `(effects (hide yes))`)))
	assert.True(t, hide)

	hide = true
	require.NoError(t, NewRecord("effects", BoolField("hide", &hide)).
		Match(read(t, `(effects (hide no))`)))
	assert.False(t, hide)

	require.NoError(t, NewRecord("effects", BoolField("hide", &hide)).
		Match(read(t, `(effects)`)))
}

func TestRecordRejectsBareAtomForNonFlag(t *testing.T) {
	var s strokeRec
	err := strokeRecord(&s).Match(read(t, `(stroke width)`))
	var pe *sexpr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, sexpr.KindUnexpected, pe.Kind)
}

func TestRecordScanAfterPositionalPrefix(t *testing.T) {
	var kind string
	var width *float64
	v := read(t, `(pin passive (width 1))`)
	c, err := sexpr.RequireHead(v, "pin")
	require.NoError(t, err)
	kind, err = c.Symbol()
	require.NoError(t, err)
	rec := NewRecord("pin", ValPtr("width", &width, CoerceFloat))
	require.NoError(t, rec.Scan(c, v))
	assert.Equal(t, "passive", kind)
	require.NotNil(t, width)
	assert.Equal(t, 1.0, *width)
}

func TestRecordDuplicateSchemaKeyPanics(t *testing.T) {
	var a, b string
	assert.Panics(t, func() {
		NewRecord("rec",
			Val("key", &a, CoerceSym),
			Val("key", &b, CoerceSym),
		)
	})
}

func TestRecordErrorCarriesWholeRecord(t *testing.T) {
	var a string
	rec := NewRecord("rec", Val("first", &a, CoerceSym).Required())
	v := read(t, `(rec)`)
	err := rec.Match(v)
	var pe *sexpr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, v, pe.Value)
}
