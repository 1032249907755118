package sexpr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// sexprLexer defines the lexical structure of KiCad s-expression files.
// Bare atoms lex as a single Atom token; the reader classifies numbers
// afterwards so that tokens like UUIDs with leading digits stay whole.
var sexprLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - Lisp style (# to end of line, rare but legal)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Parentheses
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// String literals with escape sequences
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Bare atoms: anything up to whitespace, parens, or a quote
	{Name: "Atom", Pattern: `[^\s()"]+`},
})
