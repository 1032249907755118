package shape

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// Match runs subs in order against the elements remaining at c.
// The record stays open: trailing elements are not an error here.
func Match(c *sexpr.Cursor, subs ...Shape) error {
	for _, s := range subs {
		if err := s.match(c); err != nil {
			return err
		}
	}
	return nil
}

// MatchList destructures v as a closed list (head sub...): the head symbol
// must be head, subs consume every element, and anything left over is an
// ExpectedNil error.
func MatchList(v sexpr.Value, head string, subs ...Shape) error {
	c, err := sexpr.RequireHead(v, head)
	if err != nil {
		return err
	}
	if err := Match(c, subs...); err != nil {
		return err
	}
	return c.End()
}
