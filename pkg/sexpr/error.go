package sexpr

import (
	"fmt"
	"strings"
)

// ErrorKind identifies one of the closed set of ways a match can fail.
type ErrorKind int

const (
	// KindExpectedList: the cursor was not a pair where a list was required.
	KindExpectedList ErrorKind = iota

	// KindExpectedFloat: a numeric atom was required.
	KindExpectedFloat

	// KindExpectedInt: an integral numeric atom was required.
	KindExpectedInt

	// KindExpectedStr: a string or symbol atom was required.
	KindExpectedStr

	// KindExpectedSymbol: a symbol atom was required.
	KindExpectedSymbol

	// KindExpectedNamedSymbol: a specific symbol was required.
	KindExpectedNamedSymbol

	// KindExpectedNil: a closed record had trailing unconsumed content.
	KindExpectedNil

	// KindMissingField: a required keyed field was never seen.
	KindMissingField

	// KindDuplicateField: a singular keyed field appeared twice.
	KindDuplicateField

	// KindUnexpected: an unrecognized key or malformed element.
	KindUnexpected

	// KindInvalidIdentifier: text did not parse as a canonical identifier.
	KindInvalidIdentifier

	// KindInvalidDimension: a size-like value was negative.
	KindInvalidDimension

	// KindInvalidEnumSymbol: a symbol outside a closed enum set.
	KindInvalidEnumSymbol
)

// ParseError is the single error type produced by the reader, the cursor,
// and the matcher engines. It retains the offending sub-expression so
// callers can produce precise diagnostics. The first error encountered
// aborts the parse and is returned verbatim; there is no recovery.
type ParseError struct {
	Kind  ErrorKind
	Value Value // offending sub-expression, nil for text-only kinds

	Record string   // MissingField, DuplicateField
	Field  string   // MissingField, DuplicateField
	Symbol string   // ExpectedNamedSymbol
	Text   string   // InvalidIdentifier
	Dim    float64  // InvalidDimension, in millimeters
	Wanted []string // InvalidEnumSymbol
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindExpectedList:
		return fmt.Sprintf("expected list, got %s", e.Value)
	case KindExpectedFloat:
		return fmt.Sprintf("expected float, got %s", e.Value)
	case KindExpectedInt:
		return fmt.Sprintf("expected int, got %s", e.Value)
	case KindExpectedStr:
		return fmt.Sprintf("expected string, got %s", e.Value)
	case KindExpectedSymbol:
		return fmt.Sprintf("expected symbol, got %s", e.Value)
	case KindExpectedNamedSymbol:
		return fmt.Sprintf("expected symbol %s, got %s", e.Symbol, e.Value)
	case KindExpectedNil:
		return fmt.Sprintf("expected end of list, got %s", e.Value)
	case KindMissingField:
		return fmt.Sprintf("missing %s field %s: %s", e.Record, e.Field, e.Value)
	case KindDuplicateField:
		return fmt.Sprintf("duplicate %s field %s: %s", e.Record, e.Field, e.Value)
	case KindUnexpected:
		return fmt.Sprintf("unexpected value %s", e.Value)
	case KindInvalidIdentifier:
		return fmt.Sprintf("invalid identifier %q", e.Text)
	case KindInvalidDimension:
		return fmt.Sprintf("invalid dimension value %v", e.Dim)
	case KindInvalidEnumSymbol:
		return fmt.Sprintf("expected one of %s, got %s", strings.Join(e.Wanted, ", "), e.Value)
	default:
		return fmt.Sprintf("parse error (kind %d)", e.Kind)
	}
}

// ErrExpectedList reports a non-pair where a list was required.
func ErrExpectedList(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedList, Value: v}
}

// ErrExpectedFloat reports a non-numeric atom where a float was required.
func ErrExpectedFloat(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedFloat, Value: v}
}

// ErrExpectedInt reports an atom that is not integral-representable.
func ErrExpectedInt(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedInt, Value: v}
}

// ErrExpectedStr reports an atom that is neither a string nor a symbol.
func ErrExpectedStr(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedStr, Value: v}
}

// ErrExpectedSymbol reports a non-symbol atom where a symbol was required.
func ErrExpectedSymbol(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedSymbol, Value: v}
}

// ErrExpectedNamedSymbol reports a value that is not the symbol name.
func ErrExpectedNamedSymbol(v Value, name string) *ParseError {
	return &ParseError{Kind: KindExpectedNamedSymbol, Value: v, Symbol: name}
}

// ErrExpectedNil reports trailing content in a closed record.
func ErrExpectedNil(v Value) *ParseError {
	return &ParseError{Kind: KindExpectedNil, Value: v}
}

// ErrMissingField reports a required keyed field that never appeared in v.
func ErrMissingField(record, field string, v Value) *ParseError {
	return &ParseError{Kind: KindMissingField, Record: record, Field: field, Value: v}
}

// ErrDuplicateField reports a second occurrence of a singular keyed field.
func ErrDuplicateField(record, field string, v Value) *ParseError {
	return &ParseError{Kind: KindDuplicateField, Record: record, Field: field, Value: v}
}

// ErrUnexpected reports an unrecognized key or malformed element.
func ErrUnexpected(v Value) *ParseError {
	return &ParseError{Kind: KindUnexpected, Value: v}
}

// ErrInvalidIdentifier reports text that failed canonical identifier parsing.
func ErrInvalidIdentifier(text string) *ParseError {
	return &ParseError{Kind: KindInvalidIdentifier, Text: text}
}

// ErrInvalidDimension reports a negative size-like value in millimeters.
func ErrInvalidDimension(mm float64) *ParseError {
	return &ParseError{Kind: KindInvalidDimension, Dim: mm}
}

// ErrInvalidEnumSymbol reports a symbol outside a closed set.
func ErrInvalidEnumSymbol(v Value, wanted ...string) *ParseError {
	return &ParseError{Kind: KindInvalidEnumSymbol, Value: v, Wanted: wanted}
}
