package kicad

import (
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
)

// enumValue coerces a symbol element against a closed set of variants.
func enumValue[T ~string](v sexpr.Value, allowed ...T) (T, error) {
	s, ok := v.(sexpr.Symbol)
	if ok {
		for _, a := range allowed {
			if string(s) == string(a) {
				return a, nil
			}
		}
	}
	return "", sexpr.ErrInvalidEnumSymbol(v, enumNames(allowed)...)
}

func enumNames[T ~string](allowed []T) []string {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return names
}
