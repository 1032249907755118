package sexpr

// Cursor walks a cons list left to right. Consuming operations return the
// coerced head and a new cursor positioned on the tail; the underlying
// values are never mutated.
type Cursor struct {
	rest Value
}

// NewCursor returns a cursor positioned at v.
func NewCursor(v Value) *Cursor {
	return &Cursor{rest: v}
}

// Rest returns the unconsumed remainder of the list.
func (c *Cursor) Rest() Value {
	return c.rest
}

// AtEnd reports whether the cursor has consumed the whole list.
func (c *Cursor) AtEnd() bool {
	return IsNull(c.rest)
}

// Peek returns the head element without consuming it.
func (c *Cursor) Peek() (Value, bool) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return nil, false
	}
	return p.Car, true
}

// Next consumes and returns the head element.
func (c *Cursor) Next() (Value, error) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return nil, ErrExpectedList(c.rest)
	}
	c.rest = p.Cdr
	return p.Car, nil
}

// Float consumes a numeric head.
func (c *Cursor) Float() (float64, error) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return 0, ErrExpectedList(c.rest)
	}
	n, ok := p.Car.(Number)
	if !ok {
		return 0, ErrExpectedFloat(p.Car)
	}
	c.rest = p.Cdr
	return n.Float64(), nil
}

// Int consumes a numeric head that is exactly representable as an integer.
func (c *Cursor) Int() (int64, error) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return 0, ErrExpectedList(c.rest)
	}
	n, ok := p.Car.(Number)
	if !ok {
		return 0, ErrExpectedInt(p.Car)
	}
	i, ok := n.Int64()
	if !ok {
		return 0, ErrExpectedInt(p.Car)
	}
	c.rest = p.Cdr
	return i, nil
}

// Str consumes a string head. Bare symbols are accepted too; KiCad writes
// some historically quoted fields unquoted.
func (c *Cursor) Str() (string, error) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return "", ErrExpectedList(c.rest)
	}
	switch a := p.Car.(type) {
	case String:
		c.rest = p.Cdr
		return string(a), nil
	case Symbol:
		c.rest = p.Cdr
		return string(a), nil
	default:
		return "", ErrExpectedStr(p.Car)
	}
}

// Symbol consumes a bare-symbol head.
func (c *Cursor) Symbol() (string, error) {
	p, ok := c.rest.(*Pair)
	if !ok {
		return "", ErrExpectedList(c.rest)
	}
	s, ok := p.Car.(Symbol)
	if !ok {
		return "", ErrExpectedSymbol(p.Car)
	}
	c.rest = p.Cdr
	return string(s), nil
}

// Named consumes a head that must be exactly the symbol name.
func (c *Cursor) Named(name string) error {
	p, ok := c.rest.(*Pair)
	if !ok {
		return ErrExpectedList(c.rest)
	}
	s, ok := p.Car.(Symbol)
	if !ok || string(s) != name {
		return ErrExpectedNamedSymbol(p.Car, name)
	}
	c.rest = p.Cdr
	return nil
}

// Bool consumes a boolean head. Accepted forms follow the KiCad writers:
// yes/y/true/t for true, no/n/false/f for false. An exhausted cursor reads
// as false so that `(field)` and `(field yes)` both decode.
func (c *Cursor) Bool() (bool, error) {
	if IsNull(c.rest) {
		return false, nil
	}
	p, ok := c.rest.(*Pair)
	if !ok {
		return false, ErrExpectedList(c.rest)
	}
	s, ok := p.Car.(Symbol)
	if !ok {
		return false, ErrUnexpected(p.Car)
	}
	var b bool
	switch string(s) {
	case "yes", "y", "true", "t":
		b = true
	case "no", "n", "false", "f":
		b = false
	default:
		return false, ErrUnexpected(p.Car)
	}
	c.rest = p.Cdr
	return b, nil
}

// End verifies the whole list has been consumed.
func (c *Cursor) End() error {
	if !IsNull(c.rest) {
		return ErrExpectedNil(c.rest)
	}
	return nil
}

// Head destructures v as a non-empty list whose first element is a symbol,
// returning the symbol and a cursor over the remaining elements.
func Head(v Value) (string, *Cursor, error) {
	p, ok := v.(*Pair)
	if !ok {
		return "", nil, ErrExpectedList(v)
	}
	s, ok := p.Car.(Symbol)
	if !ok {
		return "", nil, ErrExpectedSymbol(p.Car)
	}
	return string(s), &Cursor{rest: p.Cdr}, nil
}

// RequireHead destructures v as a list starting with the symbol name.
func RequireHead(v Value, name string) (*Cursor, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, ErrExpectedList(v)
	}
	s, ok := p.Car.(Symbol)
	if !ok || string(s) != name {
		return nil, ErrExpectedNamedSymbol(p.Car, name)
	}
	return &Cursor{rest: p.Cdr}, nil
}
