package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Size is a width/height pair in unsigned nanometers. KiCad serializes
// height before width.
type Size struct {
	Width  uint64
	Height uint64
}

// SizeFromMm builds a Size from millimeter dimensions, rejecting
// negatives with InvalidDimension.
func SizeFromMm(width, height float64) (Size, error) {
	w, err := UnsignedNmFromMm(width)
	if err != nil {
		return Size{}, err
	}
	h, err := UnsignedNmFromMm(height)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// ParseSize destructures a (size height width) element.
func ParseSize(v sexpr.Value) (Size, error) {
	var height, width float64
	if err := shape.MatchList(v, "size",
		shape.Float(&height),
		shape.Float(&width),
	); err != nil {
		return Size{}, err
	}
	return SizeFromMm(width, height)
}

// sizeFromHW builds a Size from an already-open height/width cursor, for
// records that embed the pair without a size head.
func sizeFromHW(c *sexpr.Cursor) (Size, error) {
	height, err := c.Float()
	if err != nil {
		return Size{}, err
	}
	width, err := c.Float()
	if err != nil {
		return Size{}, err
	}
	return SizeFromMm(width, height)
}

// Sexpr encodes the size height-first.
func (s Size) Sexpr() sexpr.Value {
	return sexpr.List(
		sexpr.Symbol("size"),
		unsignedMmValue(s.Height),
		unsignedMmValue(s.Width),
	)
}
