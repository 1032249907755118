package sexpr

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// maxDepth bounds list nesting. Real KiCad files stay in the tens; the
// bound keeps a malformed file from exhausting the stack.
const maxDepth = 256

var numberPattern = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

// reader turns the token stream into cons trees.
type reader struct {
	lex     lexer.Lexer
	symbols map[lexer.TokenType]string
}

// Read parses all top-level s-expressions from r.
func Read(r io.Reader) ([]Value, error) {
	lex, err := sexprLexer.Lex("", r)
	if err != nil {
		return nil, fmt.Errorf("lexing input: %w", err)
	}
	rd := &reader{lex: lex, symbols: lexer.SymbolsByRune(sexprLexer)}

	var result []Value
	for {
		tok, err := rd.next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return result, nil
		}
		v, err := rd.parseValue(tok, 0)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
}

// ReadString parses all top-level s-expressions from s.
func ReadString(s string) ([]Value, error) {
	return Read(strings.NewReader(s))
}

// ReadOne parses exactly one top-level s-expression from r.
func ReadOne(r io.Reader) (Value, error) {
	vs, err := Read(r)
	if err != nil {
		return nil, err
	}
	if len(vs) != 1 {
		return nil, fmt.Errorf("expected one expression, got %d", len(vs))
	}
	return vs[0], nil
}

// next returns the next significant token, skipping whitespace and comments.
func (rd *reader) next() (lexer.Token, error) {
	for {
		tok, err := rd.lex.Next()
		if err != nil {
			return lexer.Token{}, fmt.Errorf("lexing input: %w", err)
		}
		switch rd.symbols[tok.Type] {
		case "Whitespace", "Comment":
			continue
		}
		return tok, nil
	}
}

// parseValue parses the expression beginning at tok.
func (rd *reader) parseValue(tok lexer.Token, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("list nesting exceeds %d levels", maxDepth)
	}
	switch rd.symbols[tok.Type] {
	case "LParen":
		return rd.parseList(depth + 1)
	case "String":
		s, err := unquote(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tok.Pos, err)
		}
		return String(s), nil
	case "Atom":
		return classifyAtom(tok.Value), nil
	case "RParen":
		return nil, ErrUnexpected(Symbol(")"))
	default:
		return nil, ErrUnexpected(Symbol(tok.Value))
	}
}

// parseList parses elements after an opening paren up to the matching close.
func (rd *reader) parseList(depth int) (Value, error) {
	var elems []Value
	for {
		tok, err := rd.next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return nil, fmt.Errorf("unexpected end of input in list")
		}
		if rd.symbols[tok.Type] == "RParen" {
			return List(elems...), nil
		}
		v, err := rd.parseValue(tok, depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

// classifyAtom decides whether a bare token is a number or a symbol.
// Tokens with leading digits that are not numbers (UUIDs, net names)
// stay symbols.
func classifyAtom(text string) Value {
	if !numberPattern.MatchString(text) {
		return Symbol(text)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Symbol(text)
	}
	return Float(f)
}

// unquote strips the surrounding quotes and decodes backslash escapes.
func unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("malformed string literal %s", lit)
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("trailing backslash in string literal %s", lit)
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			// Unknown escape: keep it verbatim, KiCad writers vary.
			sb.WriteByte('\\')
			sb.WriteByte(body[i])
		}
	}
	return sb.String(), nil
}
