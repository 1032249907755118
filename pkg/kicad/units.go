// Package kicad implements the typed records shared by the KiCad file
// formats. Files store lengths in millimeters; records store nanometers,
// matching what KiCad uses internally.
package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// NmFromMm converts millimeters to nanometers, truncating toward zero.
func NmFromMm(mm float64) int64 {
	return int64(mm * 1e6)
}

// UnsignedNmFromMm converts millimeters to unsigned nanometers. Negative
// values are an InvalidDimension error.
func UnsignedNmFromMm(mm float64) (uint64, error) {
	if mm < 0 {
		return 0, sexpr.ErrInvalidDimension(mm)
	}
	return uint64(mm * 1e6), nil
}

// MmFromNm converts nanometers back to millimeters for serialization.
func MmFromNm(nm int64) float64 {
	return float64(nm) / 1e6
}

// MmFromUnsignedNm converts unsigned nanometers back to millimeters.
func MmFromUnsignedNm(nm uint64) float64 {
	return float64(nm) / 1e6
}

// CoerceNm coerces a numeric element in millimeters to nanometers.
func CoerceNm(v sexpr.Value) (int64, error) {
	n, ok := v.(sexpr.Number)
	if !ok {
		return 0, sexpr.ErrExpectedFloat(v)
	}
	return NmFromMm(n.Float64()), nil
}

// CoerceUnsignedNm coerces a numeric element in millimeters to unsigned
// nanometers, rejecting negatives.
func CoerceUnsignedNm(v sexpr.Value) (uint64, error) {
	n, ok := v.(sexpr.Number)
	if !ok {
		return 0, sexpr.ErrExpectedFloat(v)
	}
	return UnsignedNmFromMm(n.Float64())
}

func mmValue(nm int64) sexpr.Value {
	return sexpr.Float(MmFromNm(nm))
}

func unsignedMmValue(nm uint64) sexpr.Value {
	return sexpr.Float(MmFromUnsignedNm(nm))
}
